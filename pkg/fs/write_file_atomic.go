package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data next to filename and renames it into place, so
// readers see either the previous settings or the new ones.
func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrAtomicWrite, err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAtomicWrite, err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("%w: %w", ErrAtomicWrite, err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrAtomicWrite, err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrAtomicWrite, err)
	}
	if err = os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("%w: %w", ErrAtomicWrite, err)
	}

	return nil
}
