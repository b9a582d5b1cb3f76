// Package palette builds table colors, either fixed or derived from the
// background image.
package palette

import (
	"image/color"
	"math"
)

// RGB is an opaque color as entered by the user.
type RGB struct {
	R, G, B uint8
}

// WithAlpha returns non premultiplied color with requested alpha.
func (c RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}

	// used for text on top of derived colors
	LightText = RGB{245, 245, 245}
	DarkText  = RGB{25, 25, 25}
)

// Built-in colors used when neither derivation nor overrides apply.
var (
	DefaultRowA       = RGB{243, 166, 166}
	DefaultRowB       = RGB{232, 126, 126}
	DefaultHeaderBG   = RGB{180, 40, 40}
	DefaultBorder     = RGB{20, 0, 0}
	DefaultBodyText   = RGB{20, 0, 0}
	DefaultHeaderText = RGB{255, 255, 255}
)

const (
	DefaultHeaderAlpha uint8 = 235
	BorderAlpha        uint8 = 255

	// luminance below which light text is used
	darkThreshold = 120
)

// Palette maps drawing roles to colors.
type Palette struct {
	RowA       color.NRGBA
	RowB       color.NRGBA
	HeaderBG   color.NRGBA
	Border     color.NRGBA
	BodyText   color.NRGBA
	HeaderText color.NRGBA
}

// Overrides are explicit user choices, nil means "not set".
type Overrides struct {
	RowA       *RGB
	RowB       *RGB
	HeaderBG   *RGB
	Border     *RGB
	BodyText   *RGB
	HeaderText *RGB
}

// Default returns built-in palette.
func Default(cellAlpha, headerAlpha uint8) Palette {
	return Palette{
		RowA:       DefaultRowA.WithAlpha(cellAlpha),
		RowB:       DefaultRowB.WithAlpha(cellAlpha),
		HeaderBG:   DefaultHeaderBG.WithAlpha(headerAlpha),
		Border:     DefaultBorder.WithAlpha(BorderAlpha),
		BodyText:   DefaultBodyText.WithAlpha(255),
		HeaderText: DefaultHeaderText.WithAlpha(255),
	}
}

// FromBase derives complete palette from a single base color.
func FromBase(base RGB, cellAlpha, headerAlpha uint8) Palette {
	rowA := Blend(base, White, 0.25)
	rowB := Blend(base, Black, 0.15)
	header := Blend(base, Black, 0.35)
	border := Blend(header, Black, 0.4)

	return Palette{
		RowA:       rowA.WithAlpha(cellAlpha),
		RowB:       rowB.WithAlpha(cellAlpha),
		HeaderBG:   header.WithAlpha(headerAlpha),
		Border:     border.WithAlpha(BorderAlpha),
		BodyText:   textFor(base).WithAlpha(255),
		HeaderText: textFor(header).WithAlpha(255),
	}
}

// Resolve combines defaults, derived palette (may be nil) and overrides.
// Explicit overrides always win. Derived text colors apply only to text roles
// the user did not set.
func Resolve(cellAlpha, headerAlpha uint8, derived *Palette, o Overrides) Palette {
	p := Default(cellAlpha, headerAlpha)
	if derived != nil {
		p.RowA, p.RowB, p.HeaderBG, p.Border = derived.RowA, derived.RowB, derived.HeaderBG, derived.Border
		p.BodyText, p.HeaderText = derived.BodyText, derived.HeaderText
	}
	if o.RowA != nil {
		p.RowA = o.RowA.WithAlpha(cellAlpha)
	}
	if o.RowB != nil {
		p.RowB = o.RowB.WithAlpha(cellAlpha)
	}
	if o.HeaderBG != nil {
		p.HeaderBG = o.HeaderBG.WithAlpha(headerAlpha)
	}
	if o.Border != nil {
		p.Border = o.Border.WithAlpha(BorderAlpha)
	}
	if o.BodyText != nil {
		p.BodyText = o.BodyText.WithAlpha(255)
	}
	if o.HeaderText != nil {
		p.HeaderText = o.HeaderText.WithAlpha(255)
	}
	return p
}

// Blend moves c toward target by ratio (0 - c, 1 - target).
func Blend(c, target RGB, ratio float64) RGB {
	mix := func(a, b uint8) uint8 {
		return clamp(float64(a) + (float64(b)-float64(a))*ratio)
	}
	return RGB{mix(c.R, target.R), mix(c.G, target.G), mix(c.B, target.B)}
}

// Luminance is Rec. 709 weighted sum of gamma encoded channels.
func Luminance(c RGB) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

func textFor(c RGB) RGB {
	if Luminance(c) < darkThreshold {
		return LightText
	}
	return DarkText
}

// clamp rounds half to even and limits v to [0, 255].
func clamp(v float64) uint8 {
	return uint8(max(0, min(255, math.RoundToEven(v))))
}
