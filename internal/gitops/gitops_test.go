package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func gitLog(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "--format="+format, "-1")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return strings.TrimSpace(string(out))
}

var testAuthor = Author{Name: "Test Author", Email: "test@example.com"}

func TestInit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	err := Init(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommit_All(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello"), 0o644))

	hash, err := Commit(dir, "init: test commit", testAuthor)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Equal(t, "init: test commit", gitLog(t, dir, "%s"))
	assert.Equal(t, "Test Author <test@example.com>", gitLog(t, dir, "%an <%ae>"))
	assert.Equal(t, "Test Author <test@example.com>", gitLog(t, dir, "%cn <%ce>"))
}

func TestCommit_Paths(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))

	_, err := Commit(dir, "add a", testAuthor, "a.txt")
	require.NoError(t, err)

	status := exec.Command("git", "status", "--porcelain")
	status.Dir = dir
	out, err := status.Output()
	require.NoError(t, err)
	assert.Equal(t, "?? b.txt", strings.TrimSpace(string(out)))
}

func TestCommit_NothingToCommit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := Commit(dir, "empty", testAuthor)
	assert.ErrorContains(t, err, "git commit")
}
