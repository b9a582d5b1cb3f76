// Package layout computes page geometry for the company grid. All cell and
// header rectangles are derived from values precomputed once per page size,
// so that row heights always add up to the body height and name/id columns
// always add up to the pair width.
package layout

import (
	"image"

	"masterlist/common"
)

// Spec describes page and grid dimensions in pixels of the unrotated page.
type Spec struct {
	Width        int
	Height       int
	Margin       int
	Gutter       int
	HeaderHeight int
	PairsPerRow  int
	RowsPerPage  int
	NameRatio    float64
}

// Grid is immutable geometry computed from Spec.
type Grid struct {
	spec       Spec
	usableW    int
	usableH    int
	bodyH      int
	pairW      int
	nameW      int
	idW        int
	rowHeights []int
	rowTops    []int
}

// New validates spec and precomputes geometry.
func New(spec Spec) (*Grid, error) {
	if spec.PairsPerRow <= 0 {
		return nil, common.Validation("pairs per row must be greater than 0, got %d", spec.PairsPerRow)
	}
	if spec.RowsPerPage <= 0 {
		return nil, common.Validation("rows per page must be greater than 0, got %d", spec.RowsPerPage)
	}
	if spec.NameRatio <= 0 || spec.NameRatio >= 1 {
		return nil, common.Validation("name column ratio must be between 0 and 1 (exclusive), got %g", spec.NameRatio)
	}
	if spec.Margin < 0 || spec.Gutter < 0 || spec.HeaderHeight < 0 {
		return nil, common.Validation("margin, gutter and header height must not be negative")
	}

	g := &Grid{spec: spec}
	g.usableW = spec.Width - 2*spec.Margin
	g.usableH = spec.Height - 2*spec.Margin
	g.bodyH = g.usableH - spec.HeaderHeight
	if g.usableW <= 0 || g.bodyH < 0 {
		return nil, common.Validation("page %dx%d leaves no room for the grid (margin %d, header %d)",
			spec.Width, spec.Height, spec.Margin, spec.HeaderHeight)
	}

	g.pairW = (g.usableW - (spec.PairsPerRow-1)*spec.Gutter) / spec.PairsPerRow
	if g.pairW <= 0 {
		return nil, common.Validation("%d pairs with gutter %d do not fit into %d pixels",
			spec.PairsPerRow, spec.Gutter, g.usableW)
	}
	g.nameW = int(float64(g.pairW) * spec.NameRatio)
	g.idW = g.pairW - g.nameW

	g.rowHeights = RowHeights(g.bodyH, spec.RowsPerPage)
	g.rowTops = make([]int, len(g.rowHeights))
	y := spec.Margin + spec.HeaderHeight
	for i, h := range g.rowHeights {
		g.rowTops[i] = y
		y += h
	}
	return g, nil
}

// RowHeights splits total into n heights differing by at most one pixel, the
// first total%n rows being one pixel taller. The result always sums to total.
func RowHeights(total, n int) []int {
	if n <= 0 {
		return nil
	}
	base, extra := total/n, total%n
	heights := make([]int, n)
	for i := range heights {
		heights[i] = base
		if i < extra {
			heights[i]++
		}
	}
	return heights
}

// Pages returns number of pages needed for total rows with perPage slots each.
func Pages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func (g *Grid) Spec() Spec          { return g.spec }
func (g *Grid) PairWidth() int      { return g.pairW }
func (g *Grid) NameWidth() int      { return g.nameW }
func (g *Grid) IDWidth() int        { return g.idW }
func (g *Grid) BodyHeight() int     { return g.bodyH }
func (g *Grid) PerPage() int        { return g.spec.PairsPerRow * g.spec.RowsPerPage }
func (g *Grid) Pages(total int) int { return Pages(total, g.PerPage()) }

// RowHeights returns a copy of per row heights.
func (g *Grid) RowHeights() []int {
	return append([]int(nil), g.rowHeights...)
}

// Place maps 0-based slot index within a page to pair (column) and row.
func (g *Grid) Place(i int) (pair, row int) {
	return i % g.spec.PairsPerRow, i / g.spec.PairsPerRow
}

func (g *Grid) columnX(pair int, isID bool) (x0, x1 int) {
	x0 = g.spec.Margin + pair*(g.pairW+g.spec.Gutter)
	if isID {
		x0 += g.nameW
		return x0, x0 + g.idW
	}
	return x0, x0 + g.nameW
}

// Header returns header rectangle for the name or id column of a pair.
func (g *Grid) Header(pair int, isID bool) image.Rectangle {
	x0, x1 := g.columnX(pair, isID)
	return image.Rect(x0, g.spec.Margin, x1, g.spec.Margin+g.spec.HeaderHeight)
}

// Cell returns body rectangle for the name or id column of a pair in a row.
func (g *Grid) Cell(pair, row int, isID bool) image.Rectangle {
	x0, x1 := g.columnX(pair, isID)
	y0 := g.rowTops[row]
	return image.Rect(x0, y0, x1, y0+g.rowHeights[row])
}
