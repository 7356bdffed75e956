// Package rtos implements the scheduling and time-queue core of
// micro-os-plus: the priority-ordered ready and wait lists, the thread
// hierarchy lists, the chronological timeout/timer queue, and the
// terminated-thread parking lot, all built on the intrusive list family in
// internal/list.
//
// Thread creation, context switching, and synchronization-object bodies
// are out of scope; this package gives the rest of a kernel a place to
// put threads, not a way to run them.
package rtos

import "github.com/micro-os-plus/micro-os-plus/internal/irq"

// Scheduler wires the process-wide lists together: the ready list threads
// move into when runnable, the top-level thread hierarchy, the clock queue
// timeouts and timers sit on, and the terminated-thread parking lot. A
// synchronization object's own WaitingList is not here: each primitive
// owns its own.
//
// The zero value is ready to use: every embedded list is itself safe to
// use from its zero value.
type Scheduler struct {
	Ready      ReadyList
	Top        TopThreadsList
	Clock      ClockQueue
	Terminated TerminatedList
}

// NewScheduler returns a ready-to-use Scheduler. Equivalent to
// new(Scheduler), provided for symmetry with the rest of the package's
// constructors.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Tick is the clock tick ISR's integration point: call it once per tick
// with the current monotonic tick count.
func (s *Scheduler) Tick(now Timestamp) {
	s.Clock.CheckTimestamp(now)
}

// ReclaimTerminated drains the terminated-threads list one node at a
// time: the head is captured and unlinked under the critical section,
// destroy is called outside it (it may itself need to allocate or
// otherwise do work unsafe with interrupts masked), and yield, if
// provided, runs after each node so a long burst of reclamation does not
// starve other runnable threads. destroy is expected to release whatever
// resources the thread itself owns; that lifecycle is a collaborator's
// responsibility, not this package's.
func (s *Scheduler) ReclaimTerminated(destroy func(*Thread), yield func()) {
	for {
		node := s.popTerminated()
		if node == nil {
			return
		}
		destroy(node.thread)
		if yield != nil {
			yield()
		}
	}
}

func (s *Scheduler) popTerminated() *WaitingNode {
	g := irq.Enter()
	defer g.Exit()

	if s.Terminated.Empty() {
		return nil
	}
	node := s.Terminated.Head().Owner()
	node.link.Unlink()
	return node
}
