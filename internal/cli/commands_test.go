package cli

import (
	"bytes"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/staticize/pkg/errors"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestVersionCommand(t *testing.T) {
	require.NoError(t, run(t, "version"))
}

func TestListCommand(t *testing.T) {
	require.NoError(t, run(t, "list"))
}

func TestResolveCommand(t *testing.T) {
	require.NoError(t, run(t, "resolve", "uint32"))
}

func TestResolveUnknownType(t *testing.T) {
	err := run(t, "resolve", "no.such/pkg.Type")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestExportCommand(t *testing.T) {
	for _, format := range []string{"toml", "yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			require.NoError(t, run(t, "export", "--format", format))
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	err := run(t, "export", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
