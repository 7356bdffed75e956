package rtos

import (
	"go.uber.org/zap"

	"github.com/micro-os-plus/micro-os-plus/internal/irq"
	"github.com/micro-os-plus/micro-os-plus/internal/list"
	"github.com/micro-os-plus/micro-os-plus/internal/trace"
)

// WaitingList is a priority-ordered queue of threads waiting on some
// synchronization object. Keeping it ordered by priority costs a partial
// backward walk on insertion but makes the highest-priority waiter
// trivially available at the head, which is the better default since most
// waiting lists in practice hold only one or two entries.
//
// Link is not internally synchronized: callers must hold the critical
// section around any mutation also reachable from an interrupt handler.
type WaitingList struct {
	list.StaticList[*WaitingNode]
}

func waitPriorityOf(l *list.Link[*WaitingNode]) Priority {
	return l.Owner().thread.SchedPrio()
}

// Link inserts node by priority, querying thread.SchedPrio() live rather
// than caching it the way ReadyList.Link does, so a priority change takes
// effect on the next insertion without needing the node to be re-linked.
func (w *WaitingList) Link(node *WaitingNode) {
	prio := node.thread.SchedPrio()
	linkByPriority(&w.StaticList, node.link, prio, waitPriorityOf)

	trace.Link("wait.link", "wait",
		zap.String("thread", node.thread.Name),
		zap.Int32("priority", int32(prio)))
}

// ResumeOne wakes the highest-priority waiter, if any. The head capture and
// unlink happen atomically under the critical section; thread.Resume() is
// called afterward, outside it, because resuming a thread may need to
// acquire broader kernel state that must not run with interrupts masked.
// A waiter that turns out to already be destroyed is silently dropped
// instead of resumed.
func (w *WaitingList) ResumeOne() {
	var thread *Thread

	g := irq.Enter()
	if w.Empty() {
		g.Exit()
		return
	}
	node := w.Head().Owner()
	thread = node.thread
	node.link.Unlink()
	g.Exit()

	trace.Unlink("wait.resume_one", "wait", zap.String("thread", thread.Name))

	if thread.State() != StateDestroyed {
		thread.Resume()
	} else {
		trace.Event("wait.resume_one.gone", zap.String("thread", thread.Name))
	}
}

// ResumeAll calls ResumeOne until the list is empty. Not atomic as a
// whole: a concurrent Link can interleave new waiters in, so callers that
// need an atomic broadcast must wrap this externally.
func (w *WaitingList) ResumeAll() {
	for !w.Empty() {
		w.ResumeOne()
	}
}
