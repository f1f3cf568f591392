package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gYonder/posh/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PopulatesHomeDir(t *testing.T) {
	s, err := session.New()
	require.NoError(t, err)
	assert.NotEmpty(t, s.HomeDir)
	assert.Empty(t, s.PreviousDir)
}

func TestCWD_ReportsOSWorkingDirectory(t *testing.T) {
	s := &session.Session{}
	want, err := os.Getwd()
	require.NoError(t, err)

	got, err := s.CWD()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChdir_UpdatesWorkingDirectoryAndTracksPrevious(t *testing.T) {
	original, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(original)

	dir := t.TempDir()
	s := &session.Session{}

	require.NoError(t, s.Chdir(dir))

	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	resolvedCwd, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, resolvedDir, resolvedCwd)

	resolvedOriginal, err := filepath.EvalSymlinks(original)
	require.NoError(t, err)
	resolvedPrevious, err := filepath.EvalSymlinks(s.PreviousDir)
	require.NoError(t, err)
	assert.Equal(t, resolvedOriginal, resolvedPrevious)
}

func TestChdir_NonexistentDirectoryReturnsError(t *testing.T) {
	s := &session.Session{}
	err := s.Chdir("/no/such/directory")
	assert.Error(t, err)
}
