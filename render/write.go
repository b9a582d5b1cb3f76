package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"masterlist/common"
)

// PageFileName returns name of the page file, page is 1 based.
func PageFileName(prefix string, page int) string {
	return fmt.Sprintf("%s_%02d.png", prefix, page)
}

// writePage encodes img and replaces page file atomically, so failed page
// never leaves partial file behind.
func writePage(dir, prefix string, page int, img image.Image) (string, error) {
	name := filepath.Join(dir, PageFileName(prefix, page))

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return "", common.IO("unable to encode page %d: %w", page, err)
	}

	tmp, err := os.CreateTemp(dir, "."+PageFileName(prefix, page)+".*")
	if err != nil {
		return "", common.IO("unable to write page %d: %w", page, err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return "", common.IO("unable to write page %d: %w", page, err)
	}
	if err := tmp.Close(); err != nil {
		return "", common.IO("unable to write page %d: %w", page, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return "", common.IO("unable to write page %d: %w", page, err)
	}
	tmp = nil
	return name, nil
}
