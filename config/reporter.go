package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"masterlist/misc"
)

// maxCopySize limits size of a single file snapshot kept in memory.
var maxCopySize int64 = 64 << 20

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	r := &Report{id: id, entries: make(map[string]entry)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

// entry is either a path read when report is closed or data captured at the
// time of a call.
type entry struct {
	path  string
	data  []byte
	stamp time.Time
}

// Report accumulates files to be put into debug archive. Only regular files
// are supported. Not safe for concurrent use.
type Report struct {
	id      uuid.UUID
	entries map[string]entry
	file    *os.File
}

// Close writes debug archive.
func (r *Report) Close() error {
	if r == nil {
		// Ignore uninitialized cases to avoid checking in many places. This means no report has been requested.
		return nil
	}
	if r.file == nil {
		return nil
	}
	defer r.file.Close()

	return r.finalize()
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// ID identifies report, it is written into MANIFEST.
func (r *Report) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// Store remembers file to be read when report is closed. Logs are stored
// this way so they are complete.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	if old, exists := r.entries[name]; exists && old.path != path {
		panic(fmt.Sprintf("Attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.path, path))
	}
	r.entries[name] = entry{path: path}
}

// StoreData saves data to be put in the archive under requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("Attempt to overwrite data in the report for [%s]", name))
	}
	if data == nil {
		data = []byte{}
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// StoreCopy takes snapshot of the file content at the time of a call. Name is
// versioned when already used, so the same file may be stored several times.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("unable to store copy of %q: not a regular file", path)
	}
	if info.Size() > maxCopySize {
		return fmt.Errorf("unable to store copy of %q: file is too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	e := entry{path: path, data: data, stamp: info.ModTime()}
	if p, err := filepath.Abs(path); err == nil {
		e.path = p
	}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	}
	r.entries[name] = e
	return nil
}

// finalize creates the archive with all previously stored items.
func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now()
	manifest := new(bytes.Buffer)
	fmt.Fprintf(manifest, "report %s\n", r.id)
	for _, name := range names {
		e := r.entries[name]
		if e.data == nil {
			// stored by path, ignoring absent files
			info, err := os.Stat(e.path)
			if err != nil || !info.Mode().IsRegular() {
				fmt.Fprintf(manifest, "%s\t%s\t%s : skipped\n", now.UTC().Format(time.UnixDate), name, e.path)
				continue
			}
			if err := saveFileFrom(arc, name, e.path, info.ModTime()); err != nil {
				arc.Close()
				return err
			}
			e.stamp = info.ModTime()
		} else if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
			arc.Close()
			return err
		}
		fmt.Fprintf(manifest, "%s\t%s\t%s\n", e.stamp.UTC().Format(time.UnixDate), name, e.path)
	}

	if err := saveFile(arc, "MANIFEST", now, manifest); err != nil {
		arc.Close()
		return err
	}
	return arc.Close()
}

func saveFileFrom(dst *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(dst, name, t, f)
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
