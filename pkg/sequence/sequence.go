// Package sequence drives the three startup phases in strict order: probe
// the database, apply migrations, hand off to the service. Each phase runs
// only if the previous one succeeded; any fatal failure aborts the whole
// startup with a distinct exit code so the container runtime sees the
// failure and restart policies can react. There is no retry across phase
// boundaries and no rollback.
package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/allergyguard/preflight/internal/exitcode"
	"github.com/allergyguard/preflight/internal/logger"
	"github.com/allergyguard/preflight/pkg/handoff"
	"github.com/allergyguard/preflight/pkg/migrate"
	"github.com/allergyguard/preflight/pkg/probe"
)

// AbortError reports which phase aborted the startup and the exit code the
// process must terminate with.
type AbortError struct {
	State State
	Code  int
	Err   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("startup aborted in %s: %v", e.State, e.Err)
}

func (e *AbortError) Unwrap() error { return e.Err }

// Outcome classifies an abort. Aborts are always fatal: retryable failures
// are consumed inside their phase and never surface as an AbortError.
func (e *AbortError) Outcome() Outcome { return OutcomeFatal }

// ExecFunc performs the process handoff. It returns only on failure.
type ExecFunc func(argv []string) error

// Sequencer owns the startup sequence. The connection descriptor is read
// once at construction and is read-only for the lifetime of the run.
type Sequencer struct {
	// URL is the database connection descriptor. Empty is a fatal
	// precondition failure detected before any probe attempt.
	URL string

	// Pinger performs the readiness round trip.
	Pinger probe.Pinger

	// Policy is the probe retry policy.
	Policy probe.Policy

	// Migrator applies pending migrations.
	Migrator migrate.Runner

	// Argv is the service command to exec after migrations.
	Argv []string

	// Exec defaults to handoff.Exec.
	Exec ExecFunc

	state State
}

// State reports the current state machine position, for observability and
// tests.
func (s *Sequencer) State() State {
	return s.state
}

// Run executes INIT -> PROBING -> MIGRATING -> HANDOFF. On success it does
// not return: the process image has been replaced by the service. Every
// failure path returns an *AbortError naming the failed phase.
func (s *Sequencer) Run(ctx context.Context) *AbortError {
	if s.Exec == nil {
		s.Exec = handoff.Exec
	}

	// INIT: the descriptor is the one piece of process-wide state and its
	// absence is a configuration error, never retried.
	s.state = StateInit
	if s.URL == "" {
		return s.abort(exitcode.Config, fmt.Errorf("database connection string is not set (DATABASE_URL)"))
	}

	s.state = StateProbing
	logger.Info("Waiting for database", logger.Phase("probe"),
		logger.MaxAttempts(s.Policy.MaxAttempts), "interval", s.Policy.Interval)

	start := time.Now()
	attempts, err := probe.Wait(ctx, s.Pinger, s.Policy, func(attempt int, err error) {
		logger.Warn("Database not ready", logger.Phase("probe"),
			logger.Attempt(attempt), "outcome", OutcomeRetryable.String(), logger.Err(err))
	})
	if err != nil {
		return s.abort(exitcode.ProbeExhausted, err)
	}
	logger.Info("Database is ready", logger.Phase("probe"),
		logger.Attempt(attempts), "elapsed", time.Since(start))

	s.state = StateMigrating
	if err := s.Migrator.Run(ctx); err != nil {
		return s.abort(exitcode.MigrationFailed, err)
	}

	s.state = StateHandoff
	if err := s.Exec(s.Argv); err != nil {
		return s.abort(exitcode.HandoffFailed, err)
	}

	// Only reachable with an injected Exec: a real exec never returns on
	// success.
	s.state = StateRunning
	return nil
}

func (s *Sequencer) abort(code int, err error) *AbortError {
	failed := s.state
	s.state = StateAborted
	logger.Error("Startup aborted", logger.Phase(failed.String()),
		"outcome", OutcomeFatal.String(), logger.Err(err), "exit_code", code)
	return &AbortError{State: failed, Code: code, Err: err}
}
