// Package list implements the intrusive circular doubly linked list family
// the scheduler and clock queues are built on: a self-unlinking node
// ([Link]), a header-based list that is safe to mutate before any
// constructor has run ([StaticList]), and an eagerly-initialized variant
// that asserts emptiness when it goes away ([List]).
//
// Every node is embedded in (or, here, parameterized by) the record that
// owns it: a thread, a timer, a timeout. No operation here allocates.
package list

import "github.com/micro-os-plus/micro-os-plus/internal/debug"

// Link is a single node of an intrusive circular doubly linked list. T is
// the type of the record the link belongs to; Owner recovers it without a
// cast.
//
// A detached link has both prev and next nil. A link spliced into a
// non-empty list always has both present, and next.prev == self,
// prev.next == self.
type Link[T any] struct {
	prev, next *Link[T]
	owner      T
}

// NewLink returns a detached link owned by owner.
func NewLink[T any](owner T) *Link[T] {
	return &Link[T]{owner: owner}
}

// Owner returns the record this link was constructed for.
func (l *Link[T]) Owner() T {
	return l.owner
}

// Linked reports whether the link is currently spliced into some list.
func (l *Link[T]) Linked() bool {
	return l.next != nil
}

// Unlink removes the link from whatever list it is on, nullifying its own
// pointers. Unlinking an already-detached link is a no-op, which makes
// Unlink safe to call unconditionally and safe to call twice.
func (l *Link[T]) Unlink() {
	if l.next == nil {
		debug.Assert(l.prev == nil, "list: detached node has non-nil prev")
		return
	}
	l.prev.next = l.next
	l.next.prev = l.prev
	l.prev = nil
	l.next = nil
}

// Next returns the following link. For the tail of a list that is the
// list's header (callers normally stop there, never dereference its
// owner); for a detached link it is nil.
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

// Prev returns the preceding link, the mirror of Next.
func (l *Link[T]) Prev() *Link[T] {
	return l.prev
}

// StaticList is a header-node-based circular doubly linked list that is
// safe to use from its zero value: a zero-initialized StaticList (both
// header pointers nil) is treated as empty, and the first mutating
// operation promotes the header to a self-linked, genuinely circular list.
//
// This split exists so that a StaticList living in a global can be used
// before any Go init-time construction has run: the zero value of the
// type is already a legal empty list.
type StaticList[T any] struct {
	head Link[T]
}

// Clear (re)initializes the header to the canonical empty state: both
// pointers refer to the header itself.
func (l *StaticList[T]) Clear() {
	l.head.prev = &l.head
	l.head.next = &l.head
}

// Empty reports whether the list has no entries. A never-touched
// zero-initialized header (next == nil) counts as empty.
func (l *StaticList[T]) Empty() bool {
	return l.head.next == nil || l.head.next == &l.head
}

// Head returns the first link in the list, meaningful only when !Empty().
func (l *StaticList[T]) Head() *Link[T] {
	return l.head.next
}

// Tail returns the last link in the list, meaningful only when !Empty().
func (l *StaticList[T]) Tail() *Link[T] {
	return l.head.prev
}

// Initialized reports whether the header has ever been promoted out of its
// zero-initialized state, i.e. whether any mutating operation has touched
// it yet. Callers that want to avoid even checking Empty() before any
// constructor-equivalent has run can test this first.
func (l *StaticList[T]) Initialized() bool {
	return l.head.next != nil
}

// ensureInit promotes a zero-initialized header to self-linked. Called at
// the top of every mutating entry point on a StaticList so that the type's
// zero value is always a legal starting point.
func (l *StaticList[T]) ensureInit() {
	if l.head.next == nil {
		l.Clear()
	}
}

// InsertAfter splices node in immediately after anchor. node must be
// detached; anchor must already be part of an initialized list (its next
// pointer must be non-nil), which callers arrange by calling ensureInit
// (or Clear) before the first InsertAfter.
func (l *StaticList[T]) InsertAfter(node, anchor *Link[T]) {
	debug.Assert(node.prev == nil && node.next == nil, "list: InsertAfter requires a detached node")
	debug.Assert(anchor.next != nil, "list: InsertAfter requires an initialized anchor")

	node.prev = anchor
	node.next = anchor.next
	anchor.next.prev = node
	anchor.next = node
}

// InsertAtTail appends node at the end of the list, promoting a
// zero-initialized header first if necessary.
func (l *StaticList[T]) InsertAtTail(node *Link[T]) {
	l.ensureInit()
	l.InsertAfter(node, l.Tail())
}

// InsertAtHead inserts node so it becomes the new first entry, promoting a
// zero-initialized header first if necessary.
func (l *StaticList[T]) InsertAtHead(node *Link[T]) {
	l.ensureInit()
	l.InsertAfter(node, &l.head)
}

// List is a StaticList that is always eagerly initialized (there is no
// zero-initialized-but-legal state) and that panics if it still has
// entries when Close is called. Use this for lists whose lifetime is
// clearly runtime-scoped rather than "possibly touched before any
// constructor ran".
type List[T any] struct {
	StaticList[T]
}

// NewList returns an empty, ready-to-use List.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.Clear()
	return l
}

// Close asserts the list is empty. Destroying a non-empty constructed list
// is a programming error in the original design; here it panics rather
// than invoking undefined behavior.
func (l *List[T]) Close() {
	debug.Assert(l.Empty(), "list: Close called on a non-empty list")
}
