// Package pdfout assembles rendered pages into single printable PDF.
package pdfout

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/maruel/natural"

	"masterlist/common"
)

// Options controls PDF page setup.
type Options struct {
	// Size is one of fpdf standard sizes: A3, A4, A5, Letter, Legal.
	Size string
	// Margin in millimeters on every side.
	Margin float64
}

// Bundle writes PDF with one portrait page per image. Every image is scaled
// to fit page inside margins preserving aspect ratio and centered.
func Bundle(pages []string, dst string, opts Options) error {
	if len(pages) == 0 {
		return common.Validation("no pages to bundle")
	}
	size := opts.Size
	if len(size) == 0 {
		size = "A4"
	}

	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	pdf.SetAutoPageBreak(false, 0)

	for _, p := range pages {
		w, h, err := pixelSize(p)
		if err != nil {
			return common.Resource("unable to read page image %q: %w", p, err)
		}

		pdf.AddPage()
		pw, ph := pdf.GetPageSize()
		aw, ah := pw-2*opts.Margin, ph-2*opts.Margin
		if aw <= 0 || ah <= 0 {
			return common.Validation("pdf margin %g leaves no room on %s page", opts.Margin, size)
		}
		scale := min(aw/float64(w), ah/float64(h))
		iw, ih := float64(w)*scale, float64(h)*scale

		pdf.ImageOptions(p, (pw-iw)/2, (ph-ih)/2, iw, ih, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		if err := pdf.Error(); err != nil {
			return common.Resource("unable to add page image %q: %w", p, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return common.IO("unable to create directory for %q: %w", dst, err)
	}
	if err := pdf.OutputFileAndClose(dst); err != nil {
		return common.IO("unable to write pdf %q: %w", dst, err)
	}
	return nil
}

// Collect returns PNG files in dir sorted in natural order, so that "_10"
// follows "_9". When prefix is not empty only files starting with it are
// returned.
func Collect(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, common.Resource("unable to read directory %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(name), ".png") || strings.HasPrefix(name, ".") {
			continue
		}
		if len(prefix) > 0 && !strings.HasPrefix(name, prefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	files := make([]string, 0, len(names))
	for _, n := range names {
		files = append(files, filepath.Join(dir, n))
	}
	return files, nil
}

func pixelSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, image.ErrFormat
	}
	return cfg.Width, cfg.Height, nil
}
