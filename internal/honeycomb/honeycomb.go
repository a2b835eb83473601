// Package honeycomb lays out a hex-shaped board of flat-topped hexagons.
//
// Rows widen toward the middle of the board and narrow at the top and
// bottom; odd rows are shifted by half a hexagon so the cells interlock.
package honeycomb

import (
	"math"

	"github.com/iburimskiy/pattern-playground/internal/geom"
)

// hexAngle is 30 degrees in radians.
const hexAngle = 0.523598776

// OutlineLen is the number of points in a cell outline: six vertices and
// the first vertex repeated to close the polygon.
const OutlineLen = 7

// Cell is one hexagon of the board.
type Cell struct {
	Anchor  geom.Point
	Outline [OutlineLen]geom.Point
}

// Board is a honeycomb configuration. A Board is a value: changing any
// field means generating a new set of cells.
type Board struct {
	Width  int
	Height int
	Side   float64
}

// Valid reports whether the board can produce any cells.
func (b Board) Valid() bool {
	return b.Width > 0 && b.Height > 0 && b.Side > 0 && !math.IsInf(b.Side, 1)
}

// HexHeight is the vertical rise of a slanted edge.
func (b Board) HexHeight() float64 { return math.Sin(hexAngle) * b.Side }

// HexRadius is half the width of a cell.
func (b Board) HexRadius() float64 { return math.Cos(hexAngle) * b.Side }

// CellWidth is the width of a cell's bounding box.
func (b Board) CellWidth() float64 { return 2 * b.HexRadius() }

// CellHeight is the height of a cell's bounding box.
func (b Board) CellHeight() float64 { return b.Side + 2*b.HexHeight() }

// Origin is the pivot the board translates and rotates around. Both
// coordinates are measured in cell widths. An invalid board pivots on
// the zero point.
func (b Board) Origin() geom.Point {
	if !b.Valid() {
		return geom.Point{}
	}
	w := b.CellWidth()
	return geom.Pt(float64(b.Width)*w/2, float64(b.Height)*w/2)
}

// Resize returns a new board with the deltas applied. Dimensions never
// drop below one.
func (b Board) Resize(dw, dh int, dside float64) Board {
	nb := Board{
		Width:  b.Width + dw,
		Height: b.Height + dh,
		Side:   b.Side + dside,
	}
	nb.Width = max(nb.Width, 1)
	nb.Height = max(nb.Height, 1)
	nb.Side = math.Max(nb.Side, 1)
	return nb
}

// RowLen returns the number of hexagons in row i and the column the row
// starts at.
func (b Board) RowLen(i int) (n, start int) {
	w := b.Width
	n = w - abs(w/2-i)
	if n <= 0 {
		return 0, 0
	}
	gap := float64(w-n) / 2
	if (w-3)%4 == 0 {
		start = int(math.Ceil(gap))
	} else {
		start = int(math.Floor(gap))
	}
	return n, start
}

// Cells generates the board's hexagons in row-major order, left to
// right within each row. An invalid board yields no cells.
func (b Board) Cells() []Cell {
	if !b.Valid() {
		return nil
	}
	var (
		hh = b.HexHeight()
		hr = b.HexRadius()
		cw = b.CellWidth()
	)
	cells := make([]Cell, 0, b.Count())
	for i := 0; i < b.Height; i++ {
		n, start := b.RowLen(i)
		for j := start; j < start+n; j++ {
			anchor := geom.Pt(
				float64(j)*cw+float64(i%2)*hr,
				float64(i)*(b.Side+hh),
			)
			cells = append(cells, Cell{Anchor: anchor, Outline: b.Outline(anchor)})
		}
	}
	return cells
}

// Count returns the number of cells Cells produces.
func (b Board) Count() int {
	if !b.Valid() {
		return 0
	}
	total := 0
	for i := 0; i < b.Height; i++ {
		n, _ := b.RowLen(i)
		total += n
	}
	return total
}

// Outline returns the closed polygon of the hexagon anchored at a.
func (b Board) Outline(a geom.Point) [OutlineLen]geom.Point {
	var (
		hh = b.HexHeight()
		hr = b.HexRadius()
		cw = b.CellWidth()
		ch = b.CellHeight()
		x  = a.X
		y  = a.Y
	)
	return [OutlineLen]geom.Point{
		{X: x, Y: y + hh},
		{X: x + hr, Y: y},
		{X: x + cw, Y: y + hh},
		{X: x + cw, Y: y + hh + b.Side},
		{X: x + hr, Y: y + ch},
		{X: x, Y: y + b.Side + hh},
		{X: x, Y: y + hh},
	}
}

// Generate lays out a width x height board with the given side length.
func Generate(width, height int, side float64) []Cell {
	return Board{Width: width, Height: height, Side: side}.Cells()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
