package layout

import (
	"errors"
	"image"
	"testing"

	"masterlist/common"
)

func defaultSpec() Spec {
	return Spec{
		Width:        1920,
		Height:       1080,
		HeaderHeight: 70,
		PairsPerRow:  3,
		RowsPerPage:  18,
		NameRatio:    0.72,
	}
}

func TestRowHeightsSumExactly(t *testing.T) {
	for _, body := range []int{0, 1, 17, 18, 19, 1010, 1849, 4093} {
		for _, n := range []int{1, 2, 3, 7, 18, 25, 64} {
			heights := RowHeights(body, n)
			if len(heights) != n {
				t.Fatalf("RowHeights(%d, %d) returned %d heights", body, n, len(heights))
			}
			sum, lo, hi := 0, heights[0], heights[0]
			for _, h := range heights {
				sum += h
				lo, hi = min(lo, h), max(hi, h)
			}
			if sum != body {
				t.Errorf("RowHeights(%d, %d) sums to %d", body, n, sum)
			}
			if hi-lo > 1 {
				t.Errorf("RowHeights(%d, %d) spread %d..%d", body, n, lo, hi)
			}
		}
	}
}

func TestRowHeightsExtraGoesFirst(t *testing.T) {
	got := RowHeights(10, 4)
	want := []int{3, 3, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RowHeights(10, 4) = %v, want %v", got, want)
		}
	}
}

func TestPairWidthSplit(t *testing.T) {
	for pairs := 1; pairs <= 9; pairs++ {
		for _, ratio := range []float64{0.1, 0.5, 0.72, 0.99} {
			spec := defaultSpec()
			spec.PairsPerRow = pairs
			spec.NameRatio = ratio
			spec.Gutter = 5
			g, err := New(spec)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if g.NameWidth()+g.IDWidth() != g.PairWidth() {
				t.Errorf("pairs=%d ratio=%g: %d + %d != %d", pairs, ratio, g.NameWidth(), g.IDWidth(), g.PairWidth())
			}
			for p := range pairs {
				name, id := g.Cell(p, 0, false), g.Cell(p, 0, true)
				if name.Max.X != id.Min.X {
					t.Errorf("pair %d: name ends at %d, id starts at %d", p, name.Max.X, id.Min.X)
				}
				if name.Dx()+id.Dx() != g.PairWidth() {
					t.Errorf("pair %d: cell widths %d + %d != %d", p, name.Dx(), id.Dx(), g.PairWidth())
				}
			}
		}
	}
}

func TestDefaultGeometry(t *testing.T) {
	g, err := New(defaultSpec())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.PairWidth() != 640 || g.NameWidth() != 460 || g.IDWidth() != 180 {
		t.Errorf("widths = %d/%d/%d, want 640/460/180", g.PairWidth(), g.NameWidth(), g.IDWidth())
	}
	if g.BodyHeight() != 1010 {
		t.Errorf("BodyHeight() = %d, want 1010", g.BodyHeight())
	}
	if g.PerPage() != 54 {
		t.Errorf("PerPage() = %d, want 54", g.PerPage())
	}

	if got, want := g.Header(1, true), image.Rect(1100, 0, 1280, 70); got != want {
		t.Errorf("Header(1, true) = %v, want %v", got, want)
	}
	// 1010 = 18*56 + 2, first two rows are 57px
	if got, want := g.Cell(0, 0, false), image.Rect(0, 70, 460, 127); got != want {
		t.Errorf("Cell(0, 0, false) = %v, want %v", got, want)
	}
	if got, want := g.Cell(2, 2, true), image.Rect(1740, 184, 1920, 240); got != want {
		t.Errorf("Cell(2, 2, true) = %v, want %v", got, want)
	}
	last := g.Cell(0, 17, false)
	if last.Max.Y != 1080 {
		t.Errorf("last row ends at %d, want 1080", last.Max.Y)
	}
}

func TestMarginAndGutter(t *testing.T) {
	spec := defaultSpec()
	spec.Margin = 20
	spec.Gutter = 10
	g, err := New(spec)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// (1880 - 20) / 3
	if g.PairWidth() != 620 {
		t.Errorf("PairWidth() = %d, want 620", g.PairWidth())
	}
	if got := g.Header(1, false).Min; got != image.Pt(650, 20) {
		t.Errorf("Header(1, false).Min = %v, want (650,20)", got)
	}
	if top := g.Cell(0, 0, false).Min.Y; top != 90 {
		t.Errorf("first row top = %d, want 90", top)
	}
	if bottom := g.Cell(0, 17, false).Max.Y; bottom != 1060 {
		t.Errorf("last row bottom = %d, want 1060", bottom)
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 54, 0},
		{1, 54, 1},
		{37, 54, 1},
		{54, 54, 1},
		{55, 54, 2},
		{108, 54, 2},
		{109, 54, 3},
	}
	for _, tt := range tests {
		if got := Pages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestPlace(t *testing.T) {
	g, err := New(defaultSpec())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	tests := []struct{ i, pair, row int }{
		{0, 0, 0}, {1, 1, 0}, {2, 2, 0}, {3, 0, 1}, {36, 0, 12}, {53, 2, 17},
	}
	for _, tt := range tests {
		pair, row := g.Place(tt.i)
		if pair != tt.pair || row != tt.row {
			t.Errorf("Place(%d) = (%d, %d), want (%d, %d)", tt.i, pair, row, tt.pair, tt.row)
		}
	}
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Spec)
	}{
		{"zero pairs", func(s *Spec) { s.PairsPerRow = 0 }},
		{"zero rows", func(s *Spec) { s.RowsPerPage = 0 }},
		{"ratio zero", func(s *Spec) { s.NameRatio = 0 }},
		{"ratio one", func(s *Spec) { s.NameRatio = 1 }},
		{"header too tall", func(s *Spec) { s.HeaderHeight = 2000 }},
		{"margin too wide", func(s *Spec) { s.Margin = 1000 }},
		{"negative gutter", func(s *Spec) { s.Gutter = -1 }},
		{"gutter eats width", func(s *Spec) { s.Gutter = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := defaultSpec()
			tt.modify(&spec)
			if _, err := New(spec); !errors.Is(err, common.ErrValidation) {
				t.Errorf("New() error = %v, want validation error", err)
			}
		})
	}
}
