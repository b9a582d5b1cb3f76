package rows

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"masterlist/archive"
	"masterlist/common"
)

// Default column names.
const (
	DefaultNameColumn = "COMPANY NAME"
	DefaultIDColumn   = "COMPANY NO."
)

// Load reads all sheets of workbook at path. Path may continue into zip
// archive: "lists.zip/2024/book.xlsx".
func Load(path, nameCol, idCol string, log *zap.Logger) (*Source, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var head string
	for head = path; len(head) != 0; head, _ = filepath.Split(head) {
		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}
		if fi.IsDir() {
			return nil, common.Resource("input source was not found (%s) => (%s)", head, strings.TrimPrefix(path, head))
		}
		if !fi.Mode().IsRegular() {
			return nil, common.Resource("unexpected path mode for (%s)", head)
		}
		break
	}
	if len(head) == 0 {
		return nil, common.Resource("input source was not found (%s)", path)
	}

	inner := strings.TrimPrefix(strings.TrimPrefix(path, head), string(filepath.Separator))
	if len(inner) == 0 {
		f, err := excelize.OpenFile(head)
		if err != nil {
			return nil, common.Resource("unable to open workbook %q: %w", head, err)
		}
		defer f.Close()
		log.Debug("Reading workbook", zap.String("file", head))
		return read(f, nameCol, idCol, log)
	}

	if ok, err := isArchiveFile(head); err != nil {
		return nil, common.Resource("unable to check archive type: %w", err)
	} else if !ok {
		return nil, common.Resource("input source was not found (%s) => (%s)", head, inner)
	}
	return loadFromArchive(head, filepath.ToSlash(inner), nameCol, idCol, log)
}

// Read reads workbook from r.
func Read(r io.Reader, nameCol, idCol string, log *zap.Logger) (*Source, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, common.Resource("unable to open workbook: %w", err)
	}
	defer f.Close()
	return read(f, nameCol, idCol, log)
}

func loadFromArchive(path, entry, nameCol, idCol string, log *zap.Logger) (src *Source, err error) {
	err = archive.Open(path, entry, func(name string, r io.Reader) error {
		log.Debug("Reading workbook from archive", zap.String("archive", path), zap.String("file", name))
		s, err := Read(r, nameCol, idCol, log)
		src = s
		return err
	})
	if err == nil {
		return src, nil
	}
	if errors.Is(err, archive.ErrNotFound) {
		if names, er := archive.Workbooks(path); er == nil && len(names) > 0 {
			return nil, common.Resource("input source was not found in archive (%s) => (%s), available workbooks: %s", path, entry, strings.Join(names, ", "))
		}
		return nil, common.Resource("input source was not found in archive (%s) => (%s)", path, entry)
	}
	var ce *common.Error
	var se *SchemaError
	if errors.As(err, &ce) || errors.As(err, &se) {
		return nil, err
	}
	return nil, common.Resource("unable to read archive %q: %w", path, err)
}

func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.IsArchive(head[:n]), nil
}

func read(f *excelize.File, nameCol, idCol string, log *zap.Logger) (*Source, error) {
	nameCol, idCol = strings.TrimSpace(nameCol), strings.TrimSpace(idCol)

	var result []Row
	for _, sheet := range f.GetSheetList() {
		data, err := f.GetRows(sheet)
		if err != nil {
			return nil, common.Resource("unable to read sheet %q: %w", sheet, err)
		}
		rows, err := extract(sheet, data, nameCol, idCol)
		if err != nil {
			return nil, err
		}
		log.Debug("Sheet processed", zap.String("sheet", sheet), zap.Int("rows", len(rows)))
		result = append(result, rows...)
	}
	return NewSource(result), nil
}

// extract finds header (first non-empty row) and collects pairs from the
// rest of the sheet.
func extract(sheet string, data [][]string, nameCol, idCol string) ([]Row, error) {
	start := 0
	for start < len(data) && isBlank(data[start]) {
		start++
	}

	var header []string
	if start < len(data) {
		header = make([]string, len(data[start]))
		for i, h := range data[start] {
			header[i] = strings.TrimSpace(h)
		}
	}

	ni, ii := index(header, nameCol), index(header, idCol)
	if ni < 0 || ii < 0 {
		return nil, &SchemaError{Sheet: sheet, Want: []string{nameCol, idCol}, Found: header}
	}

	var rows []Row
	for _, rec := range data[min(start+1, len(data)):] {
		r := Row{Name: cell(rec, ni), ID: cell(rec, ii)}
		if r.Name == "" && r.ID == "" {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func index(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return norm.NFC.String(strings.TrimSpace(rec[i]))
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
