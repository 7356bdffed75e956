package rtos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/micro-os-plus/micro-os-plus/rtos"
)

// A statically allocated top-threads list accepts Link as its first ever
// operation and ends up containing exactly that thread.
func TestTopThreadsListStaticInitSafety(t *testing.T) {
	var top rtos.TopThreadsList
	require.True(t, top.Empty())

	th := rtos.NewThread(1, "root", 1)
	top.Link(th)

	require.False(t, top.Empty())
	require.True(t, top.Initialized())
	require.Same(t, th.ChildLink(), top.Head())
	require.Same(t, th.ChildLink(), top.Tail())
}

func TestTopThreadsListFIFOOrder(t *testing.T) {
	var top rtos.TopThreadsList
	a := rtos.NewThread(1, "a", 1)
	b := rtos.NewThread(2, "b", 1)
	top.Link(a)
	top.Link(b)

	require.Same(t, a.ChildLink(), top.Head())
	require.Same(t, b.ChildLink(), top.Tail())
}

func TestChildrenListIsConstructedAndClosable(t *testing.T) {
	children := rtos.NewChildrenList()
	require.True(t, children.Empty())

	child := rtos.NewThread(1, "child", 1)
	children.Link(child)
	require.False(t, children.Empty())

	require.Panics(t, func() { children.Close() })

	child.ChildLink().Unlink()
	require.NotPanics(t, func() { children.Close() })
}
