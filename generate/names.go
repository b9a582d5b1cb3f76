package generate

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"masterlist/common"
	"masterlist/config"
)

// NameValues holds variables available for bundle name expansion.
type NameValues struct {
	Prefix string
	Dir    string
	Pages  int
}

// expandName expands bundle file name template. Last path element of the
// result is cleaned of characters not allowed in file names.
func expandName(field string, values NameValues) (string, error) {
	tmpl, err := template.New("pdf name").Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", common.Validation("unable to parse bundle name template %q: %w", field, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", common.Validation("unable to expand bundle name template %q: %w", field, err)
	}
	name := strings.TrimSpace(buf.String())
	if len(name) == 0 {
		return "", common.Validation("bundle name template %q expands to empty string", field)
	}
	return filepath.Join(filepath.Dir(name), config.CleanFileName(filepath.Base(name))), nil
}
