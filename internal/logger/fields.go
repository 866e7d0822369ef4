package logger

import "log/slog"

// Standard field keys for structured logging. Use these keys consistently
// across all log statements so startup phases can be filtered and correlated
// in log aggregation.
const (
	KeyPhase       = "phase"        // startup phase: probe, migrate, handoff
	KeyAttempt     = "attempt"      // probe attempt number (1-based)
	KeyMaxAttempts = "max_attempts" // configured probe budget
	KeyInterval    = "interval"     // inter-attempt delay
	KeyDatabase    = "database"     // redacted connection descriptor
	KeyCommand     = "command"      // external command argv
	KeyExitCode    = "exit_code"    // process exit code
	KeyError       = "error"        // error message
	KeyElapsed     = "elapsed"      // wall time spent in a phase
)

// Phase returns a slog.Attr for the startup phase name.
func Phase(name string) slog.Attr {
	return slog.String(KeyPhase, name)
}

// Attempt returns a slog.Attr for a probe attempt number.
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// MaxAttempts returns a slog.Attr for the configured probe budget.
func MaxAttempts(n int) slog.Attr {
	return slog.Int(KeyMaxAttempts, n)
}

// Err returns a slog.Attr for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
