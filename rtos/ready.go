package rtos

import (
	"go.uber.org/zap"

	"github.com/micro-os-plus/micro-os-plus/internal/debug"
	"github.com/micro-os-plus/micro-os-plus/internal/list"
	"github.com/micro-os-plus/micro-os-plus/internal/trace"
)

// ReadyList is the scheduler's dispatch queue: priority-ordered, FIFO
// within a priority band, head always the next thread to run. The zero
// value is an empty, ready-to-use list, since the scheduler's ready list
// is typically a package- or process-wide singleton that needs to be safe
// to use before any constructor has run.
type ReadyList struct {
	list.StaticList[*WaitingNode]
}

func readyPriorityOf(l *list.Link[*WaitingNode]) Priority {
	return l.Owner().cachedPriority
}

// Link inserts node into the ready list by priority, sampling and caching
// thread.Priority() at this moment, deliberately distinct from
// WaitingList.Link, which queries the thread's priority live on every
// insertion. The thread's scheduler state is forced to Ready as a side
// effect.
//
// Link never calls thread.Resume(): the ready list trusts its caller to
// have already done whatever admission work resuming a thread would do.
// Only WaitingList re-runs that path.
func (r *ReadyList) Link(node *WaitingNode) {
	node.cachedPriority = node.thread.Priority()
	linkByPriority(&r.StaticList, node.link, node.cachedPriority, readyPriorityOf)
	node.thread.setState(StateReady)

	trace.Link("ready.link", "ready",
		zap.String("thread", node.thread.Name),
		zap.Int32("priority", int32(node.cachedPriority)))
}

// UnlinkHead detaches the highest-priority thread, forces its state to
// Running, and returns it: the scheduler's dispatch primitive. Asserts
// the list is non-empty; callers must check Empty() first.
func (r *ReadyList) UnlinkHead() *Thread {
	debug.Assert(!r.Empty(), "rtos: ReadyList.UnlinkHead called on an empty list")

	node := r.Head().Owner()
	node.link.Unlink()
	node.thread.setState(StateRunning)

	trace.Unlink("ready.unlink_head", "ready", zap.String("thread", node.thread.Name))

	return node.thread
}
