package palette

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"masterlist/common"
)

func uniform(c color.Color, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestDeriveUniformGray(t *testing.T) {
	img := uniform(color.NRGBA{200, 200, 200, 255}, 16, 9)

	got := Derive(img, common.PaletteSourceMean, 175, DefaultHeaderAlpha)
	want := Palette{
		RowA:       color.NRGBA{214, 214, 214, 175},
		RowB:       color.NRGBA{170, 170, 170, 175},
		HeaderBG:   color.NRGBA{130, 130, 130, 235},
		Border:     color.NRGBA{78, 78, 78, 255},
		BodyText:   color.NRGBA{25, 25, 25, 255},
		HeaderText: color.NRGBA{25, 25, 25, 255},
	}
	if got != want {
		t.Errorf("Derive() =\n%+v\nwant\n%+v", got, want)
	}

	// pure function of input
	if again := Derive(img, common.PaletteSourceMean, 175, DefaultHeaderAlpha); again != got {
		t.Errorf("Derive() is not reproducible: %+v != %+v", again, got)
	}
}

func TestDeriveDarkBackgroundUsesLightText(t *testing.T) {
	img := uniform(color.NRGBA{40, 60, 90, 255}, 4, 4)
	p := Derive(img, common.PaletteSourceMean, 100, DefaultHeaderAlpha)
	if p.BodyText != LightText.WithAlpha(255) || p.HeaderText != LightText.WithAlpha(255) {
		t.Errorf("expected light text on dark background, got body %v header %v", p.BodyText, p.HeaderText)
	}
}

func TestDeriveTextChosenIndependently(t *testing.T) {
	// mean luminance 150 is light, header (35% darker) is 97.5 and dark
	img := uniform(color.NRGBA{150, 150, 150, 255}, 2, 2)
	p := Derive(img, common.PaletteSourceMean, 175, DefaultHeaderAlpha)
	if p.BodyText != DarkText.WithAlpha(255) {
		t.Errorf("body text = %v, want dark", p.BodyText)
	}
	if p.HeaderText != LightText.WithAlpha(255) {
		t.Errorf("header text = %v, want light", p.HeaderText)
	}
}

func TestMean(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 100, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 101, 0, 255})
	// 127.5 and 100.5 round half to even
	if got, want := Mean(img), (RGB{128, 100, 128}); got != want {
		t.Errorf("Mean() = %v, want %v", got, want)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{10, 20, 30, 255}), image.Point{}, draw.Src)
	if got, want := Mean(rgba), (RGB{10, 20, 30}); got != want {
		t.Errorf("Mean(RGBA) = %v, want %v", got, want)
	}

	if got := Mean(image.NewNRGBA(image.Rectangle{})); got != Black {
		t.Errorf("Mean(empty) = %v, want black", got)
	}
}

func TestBaseColorStrategies(t *testing.T) {
	img := uniform(color.NRGBA{30, 120, 200, 255}, 32, 32)
	// kmeans clusters in Lab and converts center back to RGB
	for _, src := range []common.PaletteSource{common.PaletteSourceMean, common.PaletteSourceDominant, common.PaletteSourceKmeans} {
		t.Run(src.String(), func(t *testing.T) {
			got := BaseColor(img, src)
			if d := diff(got, RGB{30, 120, 200}); d > 3 {
				t.Errorf("BaseColor() = %v, too far from uniform color", got)
			}
		})
	}
}

func diff(a, b RGB) int {
	abs := func(v int) int { return max(v, -v) }
	return max(abs(int(a.R)-int(b.R)), abs(int(a.G)-int(b.G)), abs(int(a.B)-int(b.B)))
}

func TestBlend(t *testing.T) {
	tests := []struct {
		c, target RGB
		ratio     float64
		want      RGB
	}{
		{RGB{200, 200, 200}, White, 0.25, RGB{214, 214, 214}},
		{RGB{200, 200, 200}, Black, 0.15, RGB{170, 170, 170}},
		{RGB{0, 128, 255}, White, 0, RGB{0, 128, 255}},
		{RGB{0, 128, 255}, White, 1, White},
		{RGB{10, 20, 30}, Black, 0.5, RGB{5, 10, 15}},
	}
	for _, tt := range tests {
		if got := Blend(tt.c, tt.target, tt.ratio); got != tt.want {
			t.Errorf("Blend(%v, %v, %g) = %v, want %v", tt.c, tt.target, tt.ratio, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	derived := FromBase(RGB{200, 200, 200}, 175, DefaultHeaderAlpha)
	border := RGB{1, 2, 3}
	text := RGB{20, 0, 0}

	t.Run("defaults", func(t *testing.T) {
		p := Resolve(175, DefaultHeaderAlpha, nil, Overrides{})
		if p != Default(175, DefaultHeaderAlpha) {
			t.Errorf("Resolve() = %+v, want defaults", p)
		}
		if p.RowA != (color.NRGBA{243, 166, 166, 175}) || p.HeaderBG != (color.NRGBA{180, 40, 40, 235}) {
			t.Errorf("unexpected defaults %+v", p)
		}
	})

	t.Run("derived", func(t *testing.T) {
		p := Resolve(175, DefaultHeaderAlpha, &derived, Overrides{})
		if p != derived {
			t.Errorf("Resolve() = %+v, want derived %+v", p, derived)
		}
	})

	t.Run("explicit border wins over derived", func(t *testing.T) {
		p := Resolve(175, DefaultHeaderAlpha, &derived, Overrides{Border: &border})
		if p.Border != (color.NRGBA{1, 2, 3, 255}) {
			t.Errorf("Border = %v, want explicit", p.Border)
		}
		if p.RowA != derived.RowA {
			t.Errorf("RowA = %v, want derived %v", p.RowA, derived.RowA)
		}
	})

	t.Run("explicit text equal to default still wins", func(t *testing.T) {
		p := Resolve(175, DefaultHeaderAlpha, &derived, Overrides{BodyText: &text})
		if p.BodyText != (color.NRGBA{20, 0, 0, 255}) {
			t.Errorf("BodyText = %v, want explicit", p.BodyText)
		}
		if p.HeaderText != derived.HeaderText {
			t.Errorf("HeaderText = %v, want derived", p.HeaderText)
		}
	})

	t.Run("overrides without derivation", func(t *testing.T) {
		rowB := RGB{9, 9, 9}
		hdr := RGB{7, 7, 7}
		p := Resolve(100, 200, nil, Overrides{RowB: &rowB, HeaderBG: &hdr})
		if p.RowB != (color.NRGBA{9, 9, 9, 100}) || p.HeaderBG != (color.NRGBA{7, 7, 7, 200}) {
			t.Errorf("Resolve() = %+v", p)
		}
	})
}

func TestParseRGB(t *testing.T) {
	valid := []struct {
		in   string
		want RGB
	}{
		{"255,0,128", RGB{255, 0, 128}},
		{" 1 , 2 ,3 ", RGB{1, 2, 3}},
		{"0,0,0", RGB{}},
	}
	for _, tt := range valid {
		got, err := ParseRGB(tt.in)
		if err != nil {
			t.Errorf("ParseRGB(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, err := ParseRGB(got.String()); err != nil || back != got {
			t.Errorf("round trip of %v failed: %v, %v", got, back, err)
		}
	}

	invalid := []string{"", "255,0", "1,2,3,4", "256,0,0", "-1,0,0", "a,b,c", "1.5,2,3", "#ff0080", "#FFF", "255;0;128", "1,,2"}
	for _, in := range invalid {
		if _, err := ParseRGB(in); !errors.Is(err, common.ErrValidation) {
			t.Errorf("ParseRGB(%q) error = %v, want validation error", in, err)
		}
	}
}

func TestParseOptionalRGB(t *testing.T) {
	c, err := ParseOptionalRGB("  ")
	if err != nil || c != nil {
		t.Errorf("ParseOptionalRGB(blank) = %v, %v", c, err)
	}
	c, err = ParseOptionalRGB("1,2,3")
	if err != nil || c == nil || *c != (RGB{1, 2, 3}) {
		t.Errorf("ParseOptionalRGB() = %v, %v", c, err)
	}
}
