package privilege

import (
	"context"
	"errors"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevateSuccess(t *testing.T) {
	restore := elevateCommand
	elevateCommand = func() *exec.Cmd { return exec.Command("true") }
	defer func() { elevateCommand = restore }()

	require.NoError(t, Elevate())
}

func TestElevateFailure(t *testing.T) {
	restore := elevateCommand
	elevateCommand = func() *exec.Cmd { return exec.Command("false") }
	defer func() { elevateCommand = restore }()

	err := Elevate()
	var privErr *PrivilegeError
	require.True(t, errors.As(err, &privErr))
}

func TestKeepAliveRefreshesAndStopsOnCancel(t *testing.T) {
	restoreInterval := refreshInterval
	restoreRefresh := refresh
	defer func() {
		refreshInterval = restoreInterval
		refresh = restoreRefresh
	}()

	var refreshes atomic.Int32
	refreshInterval = 5 * time.Millisecond
	refresh = func() { refreshes.Add(1) }

	ctx, cancel := context.WithCancel(context.Background())
	done := KeepAlive(ctx)

	assert.Eventually(t, func() bool {
		return refreshes.Load() >= 2
	}, time.Second, time.Millisecond, "keep-alive should refresh periodically")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("keep-alive did not stop after cancellation")
	}

	// No further refreshes once stopped.
	count := refreshes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, count, refreshes.Load())
}
