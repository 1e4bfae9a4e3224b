//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("ado_org: acme\n"), 0644))

	exists, err := fs.Exists(testFile)
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "ado_org: acme\n", string(content))

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	}
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("first"), 0644))
	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("second"), 0600))

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	entries, err := os.ReadDir(filepath.Dir(testFile))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should be renamed away")
}

func TestFileLock(t *testing.T) {
	fs := NewFS()
	target := filepath.Join(t.TempDir(), "config.yaml")

	unlock, err := fs.FileLock(target)
	require.NoError(t, err)

	_, err = fs.FileLock(target)
	assert.ErrorIs(t, err, ErrFileLock)

	unlock()
	if runtime.GOOS != "windows" {
		assert.FileExists(t, target+".lock")
	}

	unlock, err = fs.FileLock(target)
	require.NoError(t, err)
	unlock()
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()

	homeDir, err := fs.GetHomeDir()
	require.NoError(t, err)

	expanded, err := fs.ExpandPath("~/.adogh/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".adogh", "config.yaml"), expanded)

	expanded, err = fs.ExpandPath("/etc/adogh.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/adogh.yaml", expanded)
}
