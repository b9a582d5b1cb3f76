// Package render draws company grid pages and writes them as PNG files.
package render

import (
	"github.com/gosimple/slug"
	"github.com/rupor-github/gencfg"

	"masterlist/common"
	"masterlist/config"
	"masterlist/layout"
	"masterlist/palette"
	"masterlist/rows"
	"masterlist/utils"
)

// Options is fully validated render configuration. It must not be changed
// while rendering is in progress.
type Options struct {
	NameColumn string `validate:"required"`
	IDColumn   string `validate:"required"`

	OutputDir string `validate:"required"`
	Prefix    string `validate:"required"`

	// Transliterate prefix into ASCII slug.
	Transliterate bool

	// FontPath, when empty, is located among FontCandidates.
	FontPath       string
	FontCandidates []string `validate:"dive,required"`
	// BackgroundPath is optional, solid white page is used when empty.
	BackgroundPath string

	Layout      layout.Spec
	BorderWidth int `validate:"gte=0"`
	CellAlpha   int `validate:"gte=0,lte=255"`
	HeaderAlpha int `validate:"gte=0,lte=255"`

	BodyFontSize   float64 `validate:"gt=0"`
	HeaderFontSize float64 `validate:"gt=0"`
	NameLines      int     `validate:"gte=1"`
	LineGap        int     `validate:"gte=0"`
	Padding        int     `validate:"gte=0"`

	NameLabel string
	IDLabel   string

	MatchToBackground bool
	PaletteSource     common.PaletteSource
	Colors            palette.Overrides
}

// DefaultOptions returns options rendering default 3x18 grid.
func DefaultOptions() *Options {
	return &Options{
		NameColumn: rows.DefaultNameColumn,
		IDColumn:   rows.DefaultIDColumn,
		OutputDir:  "output",
		Prefix:     "masterlist",
		Layout: layout.Spec{
			Width:        1920,
			Height:       1080,
			HeaderHeight: 70,
			PairsPerRow:  3,
			RowsPerPage:  18,
			NameRatio:    0.72,
		},
		BorderWidth:    1,
		CellAlpha:      175,
		HeaderAlpha:    int(palette.DefaultHeaderAlpha),
		BodyFontSize:   14,
		HeaderFontSize: 18,
		NameLines:      2,
		LineGap:        2,
		Padding:        10,
		NameLabel:      "COMPANY NAME",
		IDLabel:        "BRN NO",
		PaletteSource:  common.PaletteSourceMean,
	}
}

// NewOptions builds options from configuration. Color strings are parsed
// here, so malformed colors are reported before any work is done.
func NewOptions(cfg *config.Config) (*Options, error) {
	o := &Options{
		NameColumn:     cfg.Source.NameColumn,
		IDColumn:       cfg.Source.IDColumn,
		OutputDir:      cfg.Output.Directory,
		Prefix:         cfg.Output.Prefix,
		Transliterate:  cfg.Output.Transliterate,
		FontPath:       cfg.Style.Font.Path,
		FontCandidates: cfg.Style.Font.Candidates,
		BackgroundPath: cfg.Style.Background,
		Layout: layout.Spec{
			Width:        cfg.Page.Width,
			Height:       cfg.Page.Height,
			Margin:       cfg.Page.Margin,
			Gutter:       cfg.Page.Gutter,
			HeaderHeight: cfg.Page.HeaderHeight,
			PairsPerRow:  cfg.Grid.PairsPerRow,
			RowsPerPage:  cfg.Grid.RowsPerPage,
			NameRatio:    cfg.Page.NameRatio,
		},
		BorderWidth:       cfg.Style.BorderWidth,
		CellAlpha:         cfg.Style.CellAlpha,
		HeaderAlpha:       cfg.Style.HeaderAlpha,
		BodyFontSize:      cfg.Style.BodyFontSize,
		HeaderFontSize:    cfg.Style.HeaderFontSize,
		NameLines:         cfg.Style.NameLines,
		LineGap:           cfg.Style.LineGap,
		Padding:           cfg.Style.Padding,
		NameLabel:         cfg.Style.Labels.Name,
		IDLabel:           cfg.Style.Labels.ID,
		MatchToBackground: cfg.Style.MatchToBackground,
		PaletteSource:     cfg.Style.PaletteSource,
	}

	colors := []struct {
		name  string
		value string
		dst   **palette.RGB
	}{
		{"body text", cfg.Style.Colors.BodyText, &o.Colors.BodyText},
		{"header text", cfg.Style.Colors.HeaderText, &o.Colors.HeaderText},
		{"row A", cfg.Style.Colors.RowA, &o.Colors.RowA},
		{"row B", cfg.Style.Colors.RowB, &o.Colors.RowB},
		{"header background", cfg.Style.Colors.HeaderBG, &o.Colors.HeaderBG},
		{"border", cfg.Style.Colors.Border, &o.Colors.Border},
	}
	for _, c := range colors {
		v, err := palette.ParseOptionalRGB(c.value)
		if err != nil {
			return nil, common.Validation("%s color: %w", c.name, err)
		}
		*c.dst = v
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks option values and existence of referenced files.
func (o *Options) Validate() error {
	if err := gencfg.Validate(o); err != nil {
		return common.Validation("bad render options: %w", err)
	}
	if !o.PaletteSource.IsValid() {
		return common.Validation("bad palette source %d", o.PaletteSource)
	}
	if _, err := layout.New(o.Layout); err != nil {
		return err
	}
	if len(o.FontPath) > 0 && !utils.FileExists(o.FontPath) {
		return common.Validation("font file %q does not exist", o.FontPath)
	}
	if len(o.BackgroundPath) > 0 && !utils.FileExists(o.BackgroundPath) {
		return common.Validation("background image %q does not exist", o.BackgroundPath)
	}
	return nil
}

// FilePrefix returns prefix used for page file names.
func (o *Options) FilePrefix() string {
	prefix := o.Prefix
	if o.Transliterate {
		prefix = slug.Make(prefix)
	}
	return config.CleanFileName(prefix)
}
