package rtos

import (
	"go.uber.org/zap"

	"github.com/micro-os-plus/micro-os-plus/internal/list"
	"github.com/micro-os-plus/micro-os-plus/internal/trace"
)

// TerminatedList is the FIFO parking lot for threads past their final
// transition, pending reclamation by a deferred cleanup path external to
// this core. It is a static-init list since the scheduler typically owns
// a single process-wide instance.
type TerminatedList struct {
	list.StaticList[*WaitingNode]
}

// Link appends node to the tail. Ordering is FIFO; nothing here enforces
// priority.
func (l *TerminatedList) Link(node *WaitingNode) {
	l.InsertAtTail(node.link)
	trace.Link("terminated.link", "terminated", zap.String("thread", node.thread.Name))
}
