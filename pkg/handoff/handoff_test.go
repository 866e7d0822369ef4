package handoff

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_EmptyArgv(t *testing.T) {
	err := Exec(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no service command")
}

func TestExec_CommandNotFound(t *testing.T) {
	err := Exec([]string{"definitely-not-on-path-anywhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot resolve")
}

func TestExec_PassesResolvedPathAndArgv(t *testing.T) {
	orig := execve
	defer func() { execve = orig }()

	var gotPath string
	var gotArgv []string
	var gotEnv []string
	execve = func(path string, argv []string, env []string) error {
		gotPath = path
		gotArgv = argv
		gotEnv = env
		return nil
	}

	argv := []string{"sh", "-c", "echo hi"}
	require.NoError(t, Exec(argv))

	assert.NotEmpty(t, gotPath)
	assert.Equal(t, argv, gotArgv, "argument vector passes through unchanged")
	assert.Equal(t, os.Environ(), gotEnv, "environment is inherited verbatim")
}

func TestExec_SurfacesExecError(t *testing.T) {
	orig := execve
	defer func() { execve = orig }()

	execve = func(path string, argv []string, env []string) error {
		return syscall.EACCES
	}

	err := Exec([]string{"sh"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, syscall.EACCES))
}
