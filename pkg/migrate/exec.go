package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/allergyguard/preflight/internal/logger"
)

// ExecRunner invokes an external migration command (for example
// "alembic upgrade head") synchronously. The command inherits preflight's
// stdout and stderr so migration-level detail appears in the container log,
// and its exit status is the sole signal consumed.
type ExecRunner struct {
	// Argv is the command and its arguments. Must be non-empty.
	Argv []string

	// Env optionally replaces the inherited environment.
	Env []string
}

// Run executes the migration command and blocks until it exits.
// Any non-zero exit is an error; there is no partial-success handling.
func (r *ExecRunner) Run(ctx context.Context) error {
	if len(r.Argv) == 0 {
		return fmt.Errorf("migration command not configured")
	}

	logger.Info("Running migration command", logger.Phase("migrate"), "command", strings.Join(r.Argv, " "))

	cmd := exec.CommandContext(ctx, r.Argv[0], r.Argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if r.Env != nil {
		cmd.Env = r.Env
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("migration command %q exited with status %d", r.Argv[0], exitErr.ExitCode())
		}
		return fmt.Errorf("migration command %q failed to start: %w", r.Argv[0], err)
	}

	logger.Info("Migration command completed", logger.Phase("migrate"))
	return nil
}
