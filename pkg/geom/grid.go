package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid reports a grid with non-positive row or column count.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid describes an R x C rectangular array of identical cells with a
// uniform gap. Rows grow in -X, columns in +Z; placement code depends
// on this convention, do not change it.
type Grid struct {
	Rows       int
	Columns    int
	CellWidth  float64
	CellHeight float64
	Gap        float64
}

// NewGrid validates the row and column counts and returns the grid.
func NewGrid(rows, columns int, cellWidth, cellHeight, gap float64) (Grid, error) {
	if rows <= 0 || columns <= 0 {
		return Grid{}, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidGrid, rows, columns)
	}
	return Grid{
		Rows:       rows,
		Columns:    columns,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Gap:        gap,
	}, nil
}

// CellOffset returns the placement offset of cell (r, c).
func (g Grid) CellOffset(r, c int) Vec3 {
	return CellOffset(r, c, g.CellWidth, g.CellHeight, g.Gap)
}

// Footprint returns the total width and height covered by the grid.
func (g Grid) Footprint() (totalWidth, totalHeight float64) {
	return Footprint(g.Rows, g.Columns, g.CellWidth, g.CellHeight, g.Gap)
}

// Offsets returns all cell offsets in row-major order.
func (g Grid) Offsets() []Vec3 {
	out := make([]Vec3, 0, g.Rows*g.Columns)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			out = append(out, g.CellOffset(r, c))
		}
	}
	return out
}

// CellOffset returns the placement offset of cell (r, c) in a grid of
// cellWidth x cellHeight cells separated by gap. The caller is
// responsible for keeping r and c in range.
func CellOffset(r, c int, cellWidth, cellHeight, gap float64) Vec3 {
	return Vec3{
		X: -float64(r) * (cellWidth + gap),
		Y: 0,
		Z: float64(c) * (cellHeight + gap),
	}
}

// Footprint returns the overall bounding size of a rows x columns grid,
// used to size a surrounding frame profile.
func Footprint(rows, columns int, cellWidth, cellHeight, gap float64) (totalWidth, totalHeight float64) {
	totalWidth = float64(rows)*cellWidth + float64(rows-1)*gap
	totalHeight = float64(columns)*cellHeight + float64(columns-1)*gap
	return totalWidth, totalHeight
}
