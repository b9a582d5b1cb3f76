// Package archive gives access to workbooks stored inside zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// ErrNotFound is returned when requested entry is not present in archive.
var ErrNotFound = errors.New("entry not found")

// workbook extensions excelize is able to open
var workbookExt = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// OpenFunc receives content of archive entry. Reader is valid only until
// function returns.
type OpenFunc func(name string, r io.Reader) error

// Open finds entry in archive and calls fn with its content. Entry name uses
// forward slashes, leading separator is ignored.
func Open(archive, entry string, fn OpenFunc) error {
	entry = strings.TrimPrefix(filepath.ToSlash(entry), "/")
	if !isSafePath(entry) {
		return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", entry)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || f.Name != entry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open zip entry %q: %w", f.Name, err)
		}
		defer rc.Close()
		return fn(f.Name, rc)
	}
	return fmt.Errorf("%w: %q", ErrNotFound, entry)
}

// Workbooks returns names of all workbook entries in archive, naturally
// sorted. Entries with path traversal components ("..") or absolute paths are
// skipped.
func Workbooks(archive string) ([]string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isSafePath(f.Name) || !IsWorkbook(f.Name) {
			continue
		}
		names = append(names, f.Name)
	}
	sort.Sort(natural.StringSlice(names))
	return names, nil
}

// IsWorkbook checks name extension.
func IsWorkbook(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range workbookExt {
		if ext == e {
			return true
		}
	}
	return false
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
