package privilege

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"bootstrap-machine/internal/logger"
)

// PrivilegeError reports that elevation was not granted. It is fatal: no
// bootstrap step runs without it.
type PrivilegeError struct {
	Err error
}

func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("privilege elevation failed: %v", e.Err)
}

func (e *PrivilegeError) Unwrap() error { return e.Err }

// refreshInterval is how often the keep-alive task refreshes the sudo
// timestamp. The default sudo grant lasts several minutes, one refresh per
// minute keeps it alive with margin. Variable so tests can shorten it.
var refreshInterval = 60 * time.Second

// refresh performs a non-interactive timestamp refresh. Swapped in tests.
var refresh = func() {
	_ = exec.Command("sudo", "-n", "-v").Run()
}

// elevateCommand is swapped in tests.
var elevateCommand = func() *exec.Cmd {
	return exec.Command("sudo", "-v")
}

// Elevate prompts for credentials once, interactively, and validates the
// sudo timestamp. Everything that writes outside the home directory depends
// on this grant.
func Elevate() error {
	cmd := elevateCommand()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &PrivilegeError{Err: err}
	}
	logger.Debug("[DEBUG] Privilege elevation granted\n")
	return nil
}

// KeepAlive starts a background task that refreshes the elevation grant at a
// fixed interval so later steps never re-prompt. It stops when ctx is
// cancelled, which the orchestrator guarantees on every exit path. The
// returned channel closes once the task has fully stopped.
func KeepAlive(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Debug("[DEBUG] Privilege keep-alive stopped\n")
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()
	return done
}
