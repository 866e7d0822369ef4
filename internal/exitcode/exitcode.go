// Package exitcode defines the process exit codes for preflight.
//
// These codes form the operational contract with container runtimes and
// operators: a restart policy or alert rule can distinguish which startup
// phase failed from the exit status alone. 0 is only ever produced by a
// successful handoff, at which point preflight no longer exists as a process.
package exitcode

const (
	// OK is never returned by preflight itself on the happy path: a
	// successful handoff replaces the process image, so the exit status
	// belongs to the target service from then on.
	OK = 0

	// Usage indicates invalid command-line invocation.
	Usage = 1

	// Config indicates required configuration was missing or invalid,
	// most commonly an absent database connection string.
	Config = 2

	// ProbeExhausted indicates the database never became reachable within
	// the retry budget.
	ProbeExhausted = 3

	// MigrationFailed indicates the migration step reported a failure.
	// Migrations are never retried within a single startup.
	MigrationFailed = 4

	// HandoffFailed indicates the target service command could not be
	// resolved or executed.
	HandoffFailed = 5
)
