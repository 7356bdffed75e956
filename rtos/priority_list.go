package rtos

import "github.com/micro-os-plus/micro-os-plus/internal/list"

// linkByPriority implements the priority-ordered insertion both ReadyList
// and WaitingList share: insert at the tail if the list is empty or the
// new priority is no greater than the tail's, at the head if it exceeds
// the head's, otherwise walk backward from the tail until the first node
// whose priority is >= prio and insert after it.
//
// Walking from the tail, rather than forward from the head, is what makes
// equal-priority arrivals land behind existing same-priority waiters: the
// scan stops at the *last* node (nearest the tail) whose priority already
// meets or exceeds prio, so a new arrival with that same priority is
// spliced in just behind it.
//
// priorityOf abstracts over whether the caller wants the priority cached
// on the node (ReadyList) or queried live from the owning thread
// (WaitingList).
func linkByPriority(
	l *list.StaticList[*WaitingNode],
	node *list.Link[*WaitingNode],
	prio Priority,
	priorityOf func(*list.Link[*WaitingNode]) Priority,
) {
	if l.Empty() {
		l.InsertAtTail(node)
		return
	}

	tail := l.Tail()
	if prio <= priorityOf(tail) {
		l.InsertAfter(node, tail)
		return
	}

	head := l.Head()
	if prio > priorityOf(head) {
		l.InsertAtHead(node)
		return
	}

	after := tail
	for prio > priorityOf(after) {
		after = after.Prev()
	}
	l.InsertAfter(node, after)
}
