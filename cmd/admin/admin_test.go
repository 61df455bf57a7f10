package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: memory\nlogging:\n  level: error\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCommand(t *testing.T) {
	out, err := execute(t, "--config", memoryConfig(t), "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "created 1 departments, 45 courses, 6 professors, 23 reviews (7 reviews skipped)")
}

func TestMigrateCommandOnMemoryStore(t *testing.T) {
	out, err := execute(t, "--config", memoryConfig(t), "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "no schema to migrate")
}

func TestDeleteCommand(t *testing.T) {
	cfg := memoryConfig(t)

	// every invocation gets a fresh memory store
	_, err := execute(t, "--config", cfg, "delete", "course", "STAT 311")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course not found")

	_, err = execute(t, "--config", cfg, "delete", "review", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)

	_, err = execute(t, "--config", cfg, "delete", "professor")
	require.Error(t, err)
}
