package rtos_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/micro-os-plus/micro-os-plus/internal/irq"
	"github.com/micro-os-plus/micro-os-plus/rtos"
)

// Priority insertion order again, this time through the waiting list,
// which queries priority live via Thread.SchedPrio() rather than caching
// it.
func TestWaitingListPriorityInsertionOrder(t *testing.T) {
	var wait rtos.WaitingList

	var order []string
	priorities := []rtos.Priority{5, 9, 5, 7, 9, 1}
	for i, p := range priorities {
		th := rtos.NewThread(uint64(i), namesFor(i), p)
		th.SetResumeHook(func(th *rtos.Thread) { order = append(order, th.Name) })
		wait.Link(th.WaitingNode())
	}

	wait.ResumeAll()

	require.Equal(t, []string{"t1", "t4", "t3", "t0", "t2", "t5"}, order)
}

// A destroyed thread's waiting node is silently dropped by ResumeOne:
// unlinked, but Resume is never called.
func TestResumeOneSkipsDestroyedThread(t *testing.T) {
	var wait rtos.WaitingList

	th := rtos.NewThread(1, "A", 1)
	resumed := false
	th.SetResumeHook(func(*rtos.Thread) { resumed = true })
	wait.Link(th.WaitingNode())

	th.SetState(rtos.StateDestroyed)
	wait.ResumeOne()

	require.False(t, resumed)
	require.True(t, wait.Empty())
	require.False(t, th.WaitingNode().Linked())
}

func TestResumeOneCallsResumeForLiveThread(t *testing.T) {
	var wait rtos.WaitingList

	th := rtos.NewThread(1, "A", 1)
	resumed := false
	th.SetResumeHook(func(*rtos.Thread) { resumed = true })
	wait.Link(th.WaitingNode())

	wait.ResumeOne()

	require.True(t, resumed)
	require.True(t, wait.Empty())
}

func TestResumeOneOnEmptyListIsNoop(t *testing.T) {
	var wait rtos.WaitingList
	require.NotPanics(t, func() { wait.ResumeOne() })
}

// resume_all calls resume_one exactly N times.
func TestResumeAllCallsResumeOnceEach(t *testing.T) {
	var wait rtos.WaitingList

	const n = 5
	calls := 0
	for i := 0; i < n; i++ {
		th := rtos.NewThread(uint64(i), namesFor(i), rtos.Priority(i))
		th.SetResumeHook(func(*rtos.Thread) { calls++ })
		wait.Link(th.WaitingNode())
	}

	wait.ResumeAll()

	require.Equal(t, n, calls)
	require.True(t, wait.Empty())
}

func TestResumeAllOnEmptyListIsNoop(t *testing.T) {
	var wait rtos.WaitingList
	require.NotPanics(t, func() { wait.ResumeAll() })
}

// Concurrency: many goroutines register waiters under the critical
// section, the way real callers are required to; once every link has
// completed, the list is drained with ResumeOne. The list must end up
// consistent regardless of how the links interleaved.
func TestWaitingListConcurrentLinkAndResume(t *testing.T) {
	var wait rtos.WaitingList

	const n = 64
	threads := make([]*rtos.Thread, n)
	for i := range threads {
		threads[i] = rtos.NewThread(uint64(i), namesFor(i%len(allNames)), rtos.Priority(i%7))
		threads[i].SetResumeHook(func(*rtos.Thread) {})
	}

	var g errgroup.Group
	for _, th := range threads {
		th := th
		g.Go(func() error {
			guard := irq.Enter()
			defer guard.Exit()
			wait.Link(th.WaitingNode())
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for !wait.Empty() {
		wait.ResumeOne()
	}
	require.True(t, wait.Empty())
}

var allNames = []string{"t0", "t1", "t2", "t3", "t4", "t5"}
