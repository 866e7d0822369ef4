// Package migrate brings the database schema to the latest revision during
// startup. It runs exactly once per startup, only after the readiness probe
// has succeeded, and its failure is always fatal: a failed migration likely
// needs human intervention, so it is never retried blindly.
//
// Two runners are provided. ExecRunner shells out to the service's own
// migration tool (the default, matching the entrypoint contract this tool
// replaces), while BuiltinRunner applies SQL migration files directly.
package migrate

import "context"

// Runner applies pending schema migrations. Implementations report binary
// success or failure only; per-migration detail is delegated to the tool's
// own output.
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error { return f(ctx) }
