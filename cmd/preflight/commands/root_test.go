package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresServiceArgv(t *testing.T) {
	root := GetRootCmd()
	root.SetArgs([]string{"run"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	err := root.Execute()
	require.Error(t, err, "run without a service command is a usage error")
}

func TestVersionCommand(t *testing.T) {
	root := GetRootCmd()
	root.SetArgs([]string{"version"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	require.NoError(t, root.Execute())
}

func TestProbeRejectsMissingDescriptor(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PREFLIGHT_DATABASE_URL", "")

	root := GetRootCmd()
	root.SetArgs([]string{"probe"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
