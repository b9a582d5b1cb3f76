// Package utils holds small helpers shared by packages that have nothing
// else in common.
package utils

import (
	"os"
	"path/filepath"
)

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	fi, err := os.Stat(filepath.Clean(path))
	return err == nil && fi.Mode().IsRegular()
}
