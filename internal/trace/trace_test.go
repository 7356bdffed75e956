package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/micro-os-plus/micro-os-plus/internal/trace"
)

func TestDisabledByDefault(t *testing.T) {
	require.False(t, trace.Enabled())
}

func TestEnableToggles(t *testing.T) {
	trace.Enable(true)
	defer trace.Enable(false)

	require.True(t, trace.Enabled())
}

func TestLinkAndUnlinkDoNotPanicRegardlessOfState(t *testing.T) {
	require.NotPanics(t, func() {
		trace.Link("op", "list")
		trace.Unlink("op", "list")
		trace.Event("op")

		trace.Enable(true)
		defer trace.Enable(false)
		trace.Link("op", "list")
		trace.Unlink("op", "list")
		trace.Event("op")
	})
}
