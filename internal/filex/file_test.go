package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureParentDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureParentDir(filepath.Join("data", "db", "studyhub.db"))
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "data", "db"))
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotReal)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}

	_, err = os.Stat(filepath.Join(got, "studyhub.db"))
	require.True(t, os.IsNotExist(err), "must not create the file itself")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "data", "studyhub.db")

	first, err := EnsureParentDir(p)
	require.NoError(t, err)

	second, err := EnsureParentDir(p)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("data", []byte("x"), 0o660))

	_, err := EnsureParentDir(filepath.Join("data", "studyhub.db"))
	require.Error(t, err, "should fail when a file exists with the directory name")
}
