package rtos

import (
	"go.uber.org/zap"

	"github.com/micro-os-plus/micro-os-plus/internal/irq"
	"github.com/micro-os-plus/micro-os-plus/internal/list"
	"github.com/micro-os-plus/micro-os-plus/internal/trace"
)

// Timestamp is an absolute, monotonic tick count.
type Timestamp uint64

// TimestampNode is the polymorphic timestamp-queue member: a time to fire
// at, and a Fire action that must unlink itself and perform its
// variant-specific side effect. TimeoutNode and TimerNode are the two
// concrete variants this core ships; the set is closed, so a small
// interface is preferred here over a heavier vtable-style dispatch.
type TimestampNode interface {
	Timestamp() Timestamp
	// Fire is invoked by ClockQueue.CheckTimestamp once this node's time
	// has arrived. Must be called with the critical section held; Fire
	// itself unlinks the node before doing anything else.
	Fire()

	// link returns the node's embedded list link. Unexported: both
	// concrete variants live in this package, and the queue needs raw
	// link access that has no business being part of the public contract.
	link() *list.Link[TimestampNode]
}

// TimeoutNode is a timestamp node that resumes a thread when it fires.
// Used by synchronization primitives to bound how long a thread waits.
type TimeoutNode struct {
	ts     Timestamp
	thread *Thread
	id     uint64

	l *list.Link[TimestampNode]
}

// NewTimeoutNode returns a timeout node that will resume thread at ts.
func NewTimeoutNode(id uint64, ts Timestamp, thread *Thread) *TimeoutNode {
	n := &TimeoutNode{id: id, ts: ts, thread: thread}
	n.l = list.NewLink[TimestampNode](n)
	return n
}

func (n *TimeoutNode) Timestamp() Timestamp { return n.ts }

func (n *TimeoutNode) link() *list.Link[TimestampNode] { return n.l }

// Fire unlinks the node and resumes the thread unless it has already been
// destroyed.
func (n *TimeoutNode) Fire() {
	thread := n.thread
	n.l.Unlink()

	trace.Event("clock.timeout.fire", zap.Uint64("id", n.id), zap.String("thread", thread.Name))

	if thread.State() != StateDestroyed {
		thread.Resume()
	}
}

// Unlink cancels the timeout, e.g. because the wait it was guarding
// completed some other way first.
func (n *TimeoutNode) Unlink() { n.l.Unlink() }

// Linked reports whether the node is still armed (on the clock queue).
func (n *TimeoutNode) Linked() bool { return n.l.Linked() }

// TimerISR is invoked by TimerNode.Fire once the node's time arrives. A
// periodic timer's ISR is expected to update the node's timestamp and
// re-link it onto the owning ClockQueue before returning. CheckTimestamp
// tolerates and re-reads the queue head after every Fire precisely to
// support this.
type TimerISR func(n *TimerNode)

// TimerNode is a timestamp node that invokes a timer's interrupt service
// routine when it fires.
type TimerNode struct {
	ts  Timestamp
	isr TimerISR
	id  uint64

	l *list.Link[TimestampNode]
}

// NewTimerNode returns a timer node that will invoke isr at ts.
func NewTimerNode(id uint64, ts Timestamp, isr TimerISR) *TimerNode {
	n := &TimerNode{id: id, ts: ts, isr: isr}
	n.l = list.NewLink[TimestampNode](n)
	return n
}

func (n *TimerNode) Timestamp() Timestamp { return n.ts }

func (n *TimerNode) link() *list.Link[TimestampNode] { return n.l }

// SetTimestamp rearms the node for a future fire time. Intended to be
// called from within the timer's own ISR, before re-linking the node onto
// the clock queue, to implement a periodic timer.
func (n *TimerNode) SetTimestamp(ts Timestamp) { n.ts = ts }

// Fire unlinks the node and invokes the timer's ISR. A periodic timer's
// ISR may call SetTimestamp and ClockQueue.Link on this same node before
// returning.
func (n *TimerNode) Fire() {
	n.l.Unlink()

	trace.Event("clock.timer.fire", zap.Uint64("id", n.id))

	if n.isr != nil {
		n.isr(n)
	}
}

// Unlink detaches the node without firing it, e.g. to cancel a pending
// timer.
func (n *TimerNode) Unlink() { n.l.Unlink() }

// Linked reports whether the node is still armed (on the clock queue).
func (n *TimerNode) Linked() bool { return n.l.Linked() }

// ClockQueue is the ascending-timestamp queue every pending timeout and
// software timer lives on. The zero value is an empty, ready-to-use queue,
// so it can be checked safely before anything has had a chance to
// construct it.
type ClockQueue struct {
	list.StaticList[TimestampNode]
}

func clockTimestampOf(l *list.Link[TimestampNode]) Timestamp {
	return l.Owner().Timestamp()
}

// Link inserts node in ascending-timestamp order. Equal timestamps fire in
// arrival order because ties are placed after existing entries with the
// same timestamp, never before.
func (q *ClockQueue) Link(node TimestampNode) {
	ts := node.Timestamp()
	nl := node.link()

	switch {
	case q.Empty():
		q.InsertAtTail(nl)
	default:
		tail := q.Tail()
		switch {
		case ts >= clockTimestampOf(tail):
			q.InsertAfter(nl, tail)
		case ts < clockTimestampOf(q.Head()):
			q.InsertAtHead(nl)
		default:
			after := tail
			for ts < clockTimestampOf(after) {
				after = after.Prev()
			}
			q.InsertAfter(nl, after)
		}
	}

	trace.Link("clock.link", "clock", zap.Uint64("timestamp", uint64(ts)))
}

// CheckTimestamp is the tick handler: called once per tick with the
// current monotonic time, it fires every node whose timestamp has
// arrived, in order, each under its own critical section so a long burst
// of expirations does not hold off other interrupts.
//
// Periodic timers may re-link themselves from within their own Fire; this
// is tolerated by re-reading the (possibly new) head after every Fire.
func (q *ClockQueue) CheckTimestamp(now Timestamp) {
	if !q.Initialized() {
		// The queue has never been touched. Checking a zero-initialized
		// header is safe but pointless.
		return
	}

	for {
		g := irq.Enter()
		if q.Empty() {
			g.Exit()
			break
		}
		head := q.Head().Owner()
		headTS := head.Timestamp()
		if now < headTS {
			g.Exit()
			break
		}

		// Unlike WaitingList.ResumeOne's capture-then-release-then-call
		// split, Fire runs inside the critical section here: pop-and-fire
		// is one atomic step for the clock queue, so a timeout node's
		// Fire may call thread.Resume() with interrupts still masked.
		head.Fire()
		g.Exit()
	}
}
