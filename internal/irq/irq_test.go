package irq_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/micro-os-plus/micro-os-plus/internal/irq"
)

func TestEnterExitSerializesConcurrentCriticalSections(t *testing.T) {
	counter := 0
	var wg sync.WaitGroup

	const n = 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			g := irq.Enter()
			counter++
			g.Exit()
		}()
	}
	wg.Wait()

	require.Equal(t, n, counter)
}
