package render

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"os"
	"runtime"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"masterlist/common"
	"masterlist/fonts"
	"masterlist/layout"
	"masterlist/palette"
	"masterlist/rows"
	"masterlist/textfit"
	"masterlist/utils"
	"masterlist/utils/images"
)

// ProgressFunc is called after every saved page. It may be nil.
type ProgressFunc func(page, total int)

// Renderer keeps resources shared by all pages of a single run.
type Renderer struct {
	opts       *Options
	grid       *layout.Grid
	pal        palette.Palette
	base       *image.RGBA
	bodyFace   font.Face
	headerFace font.Face
	prefix     string
	log        *zap.Logger
}

// New validates options, loads font and background and resolves palette.
func New(opts *Options, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid, err := layout.New(opts.Layout)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		opts:   opts,
		grid:   grid,
		prefix: opts.FilePrefix(),
		log:    log,
	}

	if err := r.loadFaces(); err != nil {
		return nil, err
	}

	w, h := opts.Layout.Width, opts.Layout.Height
	var bg *image.NRGBA
	if len(opts.BackgroundPath) > 0 {
		if bg, err = images.LoadBackground(opts.BackgroundPath, w, h); err != nil {
			return nil, err
		}
		r.base = images.Flatten(bg, color.White)
		// IsGrayscale walks every pixel, only call it when entry is logged
		if ce := log.Check(zap.DebugLevel, "Background loaded"); ce != nil {
			ce.Write(zap.String("file", opts.BackgroundPath), zap.Bool("grayscale", images.IsGrayscale(bg)))
		}
	} else {
		r.base = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(r.base, r.base.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	}

	cellAlpha, headerAlpha := uint8(opts.CellAlpha), uint8(opts.HeaderAlpha)
	var derived *palette.Palette
	if opts.MatchToBackground && bg != nil {
		d := palette.Derive(bg, opts.PaletteSource, cellAlpha, headerAlpha)
		derived = &d
		log.Debug("Palette derived from background", zap.Stringer("source", opts.PaletteSource))
	}
	r.pal = palette.Resolve(cellAlpha, headerAlpha, derived, opts.Colors)
	return r, nil
}

func (r *Renderer) loadFaces() error {
	path := r.opts.FontPath
	if len(path) == 0 {
		candidates := r.opts.FontCandidates
		if len(candidates) == 0 {
			candidates = fonts.Candidates(runtime.GOOS, os.Getenv)
		}
		var err error
		if path, err = fonts.Locate(candidates, utils.FileExists); err != nil {
			return err
		}
	}

	f, err := fonts.Load(path)
	if err != nil {
		return err
	}
	if r.bodyFace, err = f.Face(r.opts.BodyFontSize); err != nil {
		return err
	}
	if r.headerFace, err = f.Face(r.opts.HeaderFontSize); err != nil {
		return err
	}
	r.log.Debug("Font loaded", zap.String("file", path))
	return nil
}

// Palette returns resolved colors.
func (r *Renderer) Palette() palette.Palette {
	return r.pal
}

// Grid returns page geometry.
func (r *Renderer) Grid() *layout.Grid {
	return r.grid
}

// Render pulls rows from src page by page and writes every page as soon as
// it is drawn. total is used to compute number of pages, rendering stops
// early if src is exhausted. Number of written pages is returned.
func (r *Renderer) Render(src iter.Seq[rows.Row], total int, progress ProgressFunc) (int, error) {
	pages := r.grid.Pages(total)
	if pages == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return 0, common.IO("unable to create output directory %q: %w", r.opts.OutputDir, err)
	}

	next, stop := iter.Pull(src)
	defer stop()

	perPage := r.grid.PerPage()
	for page := 1; page <= pages; page++ {
		batch := make([]rows.Row, 0, perPage)
		for len(batch) < perPage {
			row, ok := next()
			if !ok {
				break
			}
			batch = append(batch, row)
		}
		if len(batch) == 0 {
			r.log.Warn("Row stream exhausted early", zap.Int("page", page), zap.Int("expected", pages))
			return page - 1, nil
		}

		img := imaging.Rotate270(r.drawPage(batch))
		name, err := writePage(r.opts.OutputDir, r.prefix, page, img)
		if err != nil {
			return page - 1, err
		}
		r.log.Debug("Page saved", zap.Int("page", page), zap.Int("rows", len(batch)), zap.String("file", name))

		if progress != nil {
			progress(page, pages)
		}
	}
	return pages, nil
}

// Render is a convenience wrapper creating Renderer for a single run.
func Render(src iter.Seq[rows.Row], total int, opts *Options, progress ProgressFunc) (int, error) {
	r, err := New(opts, nil)
	if err != nil {
		return 0, err
	}
	return r.Render(src, total, progress)
}

// drawPage returns composited landscape page.
func (r *Renderer) drawPage(batch []rows.Row) *image.RGBA {
	bounds := r.base.Bounds()

	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, r.base, image.Point{}, draw.Src)

	// translucent shapes go to separate layer first
	overlay := image.NewNRGBA(bounds)
	pairs := r.opts.Layout.PairsPerRow
	for p := range pairs {
		r.box(overlay, r.grid.Header(p, false), r.pal.HeaderBG)
		r.box(overlay, r.grid.Header(p, true), r.pal.HeaderBG)
	}
	for i := range batch {
		pair, row := r.grid.Place(i)
		bg := r.pal.RowA
		if row%2 != 0 {
			bg = r.pal.RowB
		}
		r.box(overlay, r.grid.Cell(pair, row, false), bg)
		r.box(overlay, r.grid.Cell(pair, row, true), bg)
	}
	draw.Draw(img, bounds, overlay, image.Point{}, draw.Over)

	// text is always opaque
	for p := range pairs {
		r.label(img, r.grid.Header(p, false), r.opts.NameLabel)
		r.label(img, r.grid.Header(p, true), r.opts.IDLabel)
	}
	bodyText := image.NewUniform(r.pal.BodyText)
	for i, row := range batch {
		pair, idx := r.grid.Place(i)

		cell := r.grid.Cell(pair, idx, false)
		lines := textfit.Fit(r.bodyFace, row.Name, cell.Dx()-2*r.opts.Padding, r.opts.NameLines)
		r.lines(img, cell, lines, r.bodyFace, bodyText)

		cell = r.grid.Cell(pair, idx, true)
		lines = textfit.Fit(r.bodyFace, row.ID, cell.Dx()-2*r.opts.Padding, 1)
		r.lines(img, cell, lines[:1], r.bodyFace, bodyText)
	}
	return img
}

// box fills rectangle and draws border of configured width inside it.
// rect.Max is inclusive here, neighbouring cells share border pixels.
func (r *Renderer) box(dst draw.Image, rect image.Rectangle, fill color.NRGBA) {
	x0, y0, x1, y1 := rect.Min.X, rect.Min.Y, rect.Max.X+1, rect.Max.Y+1

	draw.Draw(dst, image.Rect(x0, y0, x1, y1), image.NewUniform(fill), image.Point{}, draw.Src)

	w := r.opts.BorderWidth
	if w <= 0 {
		return
	}
	border := image.NewUniform(r.pal.Border)
	for _, s := range []image.Rectangle{
		image.Rect(x0, y0, x1, min(y0+w, y1)),
		image.Rect(x0, max(y1-w, y0), x1, y1),
		image.Rect(x0, y0, min(x0+w, x1), y1),
		image.Rect(max(x1-w, x0), y0, x1, y1),
	} {
		draw.Draw(dst, s, border, image.Point{}, draw.Src)
	}
}

// label draws header text centered in rect.
func (r *Renderer) label(dst draw.Image, rect image.Rectangle, text string) {
	size := r.opts.HeaderFontSize
	tw := font.MeasureString(r.headerFace, text)
	x := float64(rect.Min.X) + (float64(rect.Dx())-fixedToFloat(tw))/2
	y := float64(rect.Min.Y) + (float64(rect.Dy())-size)/2
	r.text(dst, r.headerFace, image.NewUniform(r.pal.HeaderText), x, y, text)
}

// lines draws lines centered horizontally and vertically in rect, every line
// is font size tall plus line gap.
func (r *Renderer) lines(dst draw.Image, rect image.Rectangle, lines []string, face font.Face, src image.Image) {
	size := r.opts.BodyFontSize
	gap := float64(r.opts.LineGap)
	height := float64(len(lines))*(size+gap) - gap

	y := float64(rect.Min.Y) + (float64(rect.Dy())-height)/2
	for _, line := range lines {
		tw := font.MeasureString(face, line)
		x := float64(rect.Min.X) + (float64(rect.Dx())-fixedToFloat(tw))/2
		r.text(dst, face, src, x, y, line)
		y += size + gap
	}
}

// text draws s with its top (ascent line) at y.
func (r *Renderer) text(dst draw.Image, face font.Face, src image.Image, x, y float64, s string) {
	if len(s) == 0 {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
