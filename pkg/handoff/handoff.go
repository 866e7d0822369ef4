// Package handoff replaces the preflight process with the target service.
//
// This is an execve-style transfer of process identity rather than a
// spawn-and-supervise: the service inherits preflight's PID, file
// descriptors, and signal routing, so the container runtime delivers
// termination and reload signals to the service directly with no
// intermediary to forward them. On success control never returns here.
package handoff

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/allergyguard/preflight/internal/logger"
)

// execve is swapped out in tests. syscall.Exec only returns on failure.
var execve = syscall.Exec

// Exec resolves argv[0] on PATH and replaces the current process image with
// it. The argument vector is passed through unchanged and the environment is
// inherited verbatim.
//
// Exec only returns on failure: an unresolvable or unexecutable target.
// There is no retry; re-running an exec that failed on path or permissions
// cannot succeed without outside intervention.
func Exec(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no service command given")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("cannot resolve service command %q: %w", argv[0], err)
	}

	logger.Info("Handing off to service", logger.Phase("handoff"), "command", path)

	if err := execve(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %q: %w", path, err)
	}

	// Unreachable: a successful exec does not return.
	return nil
}
