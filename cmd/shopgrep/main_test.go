package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/shopgrep/cmd/shopgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// --help should return nil (success) and show commands
	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	expectedCommands := []string{"scan", "extract", "list", "export", "delete"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}

	// Verify Kong-style formatting (Kong has "Usage:" prefix and "Flags:" section)
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoArgsShowsHelp(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_ListOnEmptyDatabase(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"list"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No scans found")
}

func TestMain_Run_DeleteRequiresForce(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"delete", "some-scan-id"}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "--force")
}

func TestMain_Run_DeleteUnknownScan(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"delete", "nope", "--force"}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "not found")
}

func TestMain_Run_ExportRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	out := filepath.Join(t.TempDir(), "products.txt")
	err := m.Run(context.Background(), []string{"export", "some-scan-id", out}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "unsupported export format")
}
