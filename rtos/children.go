package rtos

import "github.com/micro-os-plus/micro-os-plus/internal/list"

// TopThreadsList tracks every root (parentless) thread in the system, for
// enumeration. It uses the static-init variant because it is typically a
// single process-wide list that threads may register into during very
// early startup, before any constructor has run.
type TopThreadsList struct {
	list.StaticList[*Thread]
}

// Link appends thread to the tail. No ordering is enforced.
func (l *TopThreadsList) Link(t *Thread) {
	l.InsertAtTail(t.childLink)
}

// ChildrenList tracks the direct children of a single parent thread.
// Unlike TopThreadsList it uses the constructed variant: a thread's
// children list is created (and torn down) alongside the thread itself,
// never touched before that.
type ChildrenList struct {
	list.List[*Thread]
}

// NewChildrenList returns an empty, ready-to-use children list.
func NewChildrenList() *ChildrenList {
	l := &ChildrenList{}
	l.Clear()
	return l
}

// Link appends thread to the tail. No ordering is enforced.
func (l *ChildrenList) Link(t *Thread) {
	l.InsertAtTail(t.childLink)
}
