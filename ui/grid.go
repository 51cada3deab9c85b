// Package ui holds what the front ends share: mapping board positions to
// grid cells and back.
package ui

// Grid lays out NumCards positions row by row, Columns per row, each cell
// CellWidth by CellHeight with Gap between cells.
type Grid struct {
	NumCards   int
	Columns    int
	CellWidth  int
	CellHeight int
	Gap        int
}

func (grid Grid) Rows() int {
	if grid.Columns <= 0 {
		return 0
	}
	return (grid.NumCards + grid.Columns - 1) / grid.Columns
}

func (grid Grid) Width() int {
	return grid.Columns*(grid.CellWidth+grid.Gap) - grid.Gap
}

func (grid Grid) Height() int {
	return grid.Rows()*(grid.CellHeight+grid.Gap) - grid.Gap
}

// Origin returns the top-left corner of the cell at pos
func (grid Grid) Origin(pos int) (x, y int) {
	col, row := pos%grid.Columns, pos/grid.Columns
	return col * (grid.CellWidth + grid.Gap), row * (grid.CellHeight + grid.Gap)
}

// IndexAt returns the position whose cell contains (x, y), or -1 for points
// off the board or in the gaps between cells.
func (grid Grid) IndexAt(x, y int) int {
	if grid.Columns <= 0 || x < 0 || y < 0 {
		return -1
	}

	strideX, strideY := grid.CellWidth+grid.Gap, grid.CellHeight+grid.Gap
	col, row := x/strideX, y/strideY
	if x%strideX >= grid.CellWidth || y%strideY >= grid.CellHeight {
		return -1
	}
	if col >= grid.Columns {
		return -1
	}

	pos := row*grid.Columns + col
	if pos >= grid.NumCards {
		return -1
	}
	return pos
}
