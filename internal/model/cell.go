package model

import "fmt"

// Cell identifies a square, hexagon or triangle on the board.
// Cells are plain values; every geometric question about them is answered by
// the GridTopology they are used with.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StartCell is the cell the first play of a game must cover
var StartCell = Cell{Row: 0, Col: 0}

// NewCell creates a cell at the given coordinates
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// IsStart returns true for the origin
func (c Cell) IsStart() bool {
	return c == StartCell
}

// Less orders cells row-major
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Compare returns -1, 0 or +1 in row-major order, for use with slices.SortFunc
func (c Cell) Compare(other Cell) int {
	switch {
	case c.Less(other):
		return -1
	case other.Less(c):
		return 1
	default:
		return 0
	}
}

// String returns the cell as "(row,col)"
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// parity is 0 for cells whose row+col is even and 1 otherwise
func (c Cell) parity() int {
	return mod(c.Row+c.Col, 2)
}

// mod returns the non-negative remainder of a/b
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// gcd returns the greatest common divisor of two non-negative ints
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
