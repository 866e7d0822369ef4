package migrate

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell environment")
	}

	r := &ExecRunner{Argv: []string{"true"}}
	require.NoError(t, r.Run(context.Background()))
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell environment")
	}

	r := &ExecRunner{Argv: []string{"false"}}
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with status 1")
}

func TestExecRunner_CommandNotFound(t *testing.T) {
	r := &ExecRunner{Argv: []string{"definitely-not-a-real-migration-tool"}}
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
}

func TestExecRunner_EmptyArgv(t *testing.T) {
	r := &ExecRunner{}
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestRunnerFunc(t *testing.T) {
	called := false
	f := RunnerFunc(func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, f.Run(context.Background()))
	assert.True(t, called)
}

func TestBuiltinRunner_MissingSource(t *testing.T) {
	r := &BuiltinRunner{URL: "postgres://localhost/none"}
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
