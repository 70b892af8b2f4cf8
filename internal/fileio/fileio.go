// Package fileio holds the shared file-writing primitives: atomic replace
// for readers that may race a writer, and advisory locking for files that
// several processes edit read-modify-write.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWrite writes data to a temp file then renames it into place,
// preventing partial writes on crash or disk-full. Parent directories are
// created as needed.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	tmp := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Exists checks if a file exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
