package rtos

import (
	"go.uber.org/atomic"

	"github.com/micro-os-plus/micro-os-plus/internal/list"
)

// Priority is a thread's scheduling priority. Higher values are more
// urgent.
type Priority int32

// SchedState is the coarse scheduler-visible state of a thread.
type SchedState int32

const (
	StateReady SchedState = iota
	StateRunning
	StateWaiting
	StateTerminated
	StateDestroyed
)

func (s SchedState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateWaiting:
		return "waiting"
	case StateTerminated:
		return "terminated"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Thread carries exactly the fields the list core touches: a priority, a
// scheduler state, an embedded child link, and the single waiting node
// that represents it on a wait list or the ready list, never both.
//
// Thread creation, context switching, and everything else a real thread
// needs belong to other collaborators; this type exists only to give the
// lists something real to operate on.
type Thread struct {
	ID   uint64
	Name string

	priority atomic.Int32
	state    atomic.Int32

	childLink *list.Link[*Thread]
	node      *WaitingNode

	// resumeHook stands in for whatever broader kernel state actually
	// resuming a thread needs to touch, e.g. linking the thread's
	// waiting node onto a ready list. Set via SetResumeHook by whatever
	// owns the thread (in this repo, the tests set it directly).
	// Left nil, Resume is a no-op besides the state check its caller
	// already performed.
	resumeHook func(*Thread)
}

// NewThread returns a new thread in state Ready with the given name and
// priority. id should be unique across the process; callers that care
// about diagnostics normally generate it with a snowflake.Node.
func NewThread(id uint64, name string, priority Priority) *Thread {
	t := &Thread{ID: id, Name: name}
	t.priority.Store(int32(priority))
	t.state.Store(int32(StateReady))
	t.childLink = list.NewLink(t)
	t.node = newWaitingNode(t)
	return t
}

// Priority returns the thread's current priority.
func (t *Thread) Priority() Priority {
	return Priority(t.priority.Load())
}

// SetPriority updates the thread's priority. Does not itself move the
// thread between lists; a caller changing the priority of a thread
// already on a priority list must re-link it.
func (t *Thread) SetPriority(p Priority) {
	t.priority.Store(int32(p))
}

// SchedPrio returns the priority used when inserting into a priority list
// that queries it live rather than using a cached value. Kept as a
// distinct method from Priority so a future priority-inheritance layer
// has somewhere to hook in without touching the ready list's
// cached-at-link-time contract.
func (t *Thread) SchedPrio() Priority {
	return t.Priority()
}

// State returns the thread's current scheduler state.
func (t *Thread) State() SchedState {
	return SchedState(t.state.Load())
}

// setState is used by the list operations that are specified to force a
// state transition as a side effect of linking/unlinking (ReadyList.Link
// forces Ready, ReadyList.UnlinkHead forces Running).
func (t *Thread) setState(s SchedState) {
	t.state.Store(int32(s))
}

// SetState lets an external caller (the thread module this spec treats as
// a collaborator) drive state transitions this core does not itself
// cause, e.g. marking a thread Terminated or Destroyed.
func (t *Thread) SetState(s SchedState) {
	t.setState(s)
}

// SetResumeHook installs the callback Resume invokes. Typically set once
// when the thread is admitted to a Scheduler.
func (t *Thread) SetResumeHook(hook func(*Thread)) {
	t.resumeHook = hook
}

// Resume is non-reentrant. WaitingList.ResumeOne and TimeoutNode.Fire call
// it after confirming the thread is not destroyed and after unlinking it
// from whatever list it was on. ResumeOne calls it outside the critical
// section; TimeoutNode.Fire runs from ClockQueue.CheckTimestamp with the
// critical section still held, so a resume hook reached that way must not
// enter it again.
func (t *Thread) Resume() {
	if t.resumeHook != nil {
		t.resumeHook(t)
	}
}

// ChildLink returns the embedded link used by TopThreadsList and
// ChildrenList. Exposed so those lists can splice it without Thread
// needing to know which hierarchy list it is in.
func (t *Thread) ChildLink() *list.Link[*Thread] {
	return t.childLink
}

// WaitingNode returns the thread's single waiting-node record, the thing
// actually placed on wait queues and the ready list.
func (t *Thread) WaitingNode() *WaitingNode {
	return t.node
}

// WaitingNode is the per-thread record carrying link pointers plus a
// back-reference to the thread. A thread has exactly one; it is on a
// WaitingList or ReadyList, never both at once.
type WaitingNode struct {
	link   *list.Link[*WaitingNode]
	thread *Thread

	// cachedPriority is sampled from thread.Priority() by ReadyList.Link
	// at link time, rather than queried live on every insertion the way
	// WaitingList does.
	cachedPriority Priority
}

func newWaitingNode(t *Thread) *WaitingNode {
	n := &WaitingNode{thread: t}
	n.link = list.NewLink(n)
	return n
}

// Thread returns the thread this node represents.
func (n *WaitingNode) Thread() *Thread {
	return n.thread
}

// Linked reports whether the node is currently on some list.
func (n *WaitingNode) Linked() bool {
	return n.link.Linked()
}

// Unlink removes the node from whatever list (wait or ready) it is
// currently on, if any. A no-op if it is on neither.
func (n *WaitingNode) Unlink() {
	n.link.Unlink()
}
