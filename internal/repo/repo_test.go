package repo

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullaframework/create-nulla/internal/testutil"
)

func TestInit_CreatesRepository(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "widget")
	testutil.WriteFile(t, projectPath, "package.json", "{}")

	outcome, err := Init(projectPath)
	require.NoError(t, err)
	assert.Equal(t, Initialized, outcome)

	_, err = git.PlainOpen(projectPath)
	assert.NoError(t, err)
}

func TestInit_SkipsInsideExistingWorkTree(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	projectPath := filepath.Join(dir, "widget")
	testutil.WriteFile(t, projectPath, "package.json", "{}")

	outcome, err := Init(projectPath)
	require.NoError(t, err)
	assert.Equal(t, InsideRepository, outcome)

	_, err = git.PlainOpen(projectPath)
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}
