package fonts

import (
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"masterlist/common"
)

// Font is parsed font data able to produce faces of any size.
type Font struct {
	Path string
	otf  *opentype.Font
}

// Load reads and parses TrueType or OpenType font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.Resource("unable to read font %q: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses font data, name is only used in messages.
func Parse(name string, data []byte) (*Font, error) {
	if !filetype.Is(data, "ttf") && !filetype.Is(data, "otf") {
		return nil, common.Resource("font %q is neither TrueType nor OpenType", name)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, common.Resource("unable to parse font %q: %w", name, err)
	}
	return &Font{Path: name, otf: otf}, nil
}

// Face returns face of requested size. Faces are created at 72 DPI so size
// in points is equal to size in pixels.
func (f *Font) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, common.Resource("unable to create %gpx face from %q: %w", size, f.Path, err)
	}
	return face, nil
}
