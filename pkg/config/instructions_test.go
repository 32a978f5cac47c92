package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgentsFile(t *testing.T, dir, instructions string) string {
	t.Helper()
	path := filepath.Join(dir, "agents.yaml")
	content := "agents:\n  classifier:\n    name: Classification Agent\n    instructions: |\n      " + instructions + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewStoreFallsBackWithoutPath(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.Version)
	assert.Contains(t, snap.Instructions, "Infrastructure-as-Code analyst")
	assert.True(t, s.Info().UsingFallback)
}

func TestNewStoreFallsBackOnMissingFile(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, s.Info().UsingFallback)
}

func TestNewStoreReadsFile(t *testing.T) {
	path := writeAgentsFile(t, t.TempDir(), "Custom classifier brief.")

	s, err := NewStore(path)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Contains(t, snap.Instructions, "Custom classifier brief.")
	assert.Equal(t, uint64(1), snap.Version)
	assert.False(t, s.Info().UsingFallback)
}

func TestNewStoreRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agents: [not: a: map"), 0o644))

	_, err := NewStore(path)
	assert.Error(t, err)
}

func TestReloadBumpsVersionOnlyOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeAgentsFile(t, dir, "First instructions.")

	s, err := NewStore(path)
	require.NoError(t, err)

	// Unchanged file: same version.
	snap, err := s.Reload()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Version)

	// Changed file: version increments and the new text is served.
	writeAgentsFile(t, dir, "Second instructions.")
	snap, err = s.Reload()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Version)
	assert.Contains(t, snap.Instructions, "Second instructions.")

	// Older snapshots are unaffected by the swap.
	assert.Contains(t, s.Snapshot().Instructions, "Second instructions.")
}

func TestInfoReportsLength(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)

	info := s.Info()
	assert.Equal(t, len(s.Snapshot().Instructions), info.InstructionsLength)
	assert.Equal(t, uint64(1), info.Version)
}
