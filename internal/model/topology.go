package model

import (
	"fmt"
	"slices"
)

// Shape selects the tiling of the board
type Shape string

const (
	ShapeOrthogonal4 Shape = "orthogonal4" // Squares, edge neighbors only
	ShapeOrthogonal8 Shape = "orthogonal8" // Squares, edge and corner neighbors
	ShapeHex         Shape = "hex"         // Hexagons in columns, no east/west neighbors
	ShapeTriangle    Shape = "triangle"    // Alternating triangles
)

// ValidShapes returns all supported shapes
func ValidShapes() []Shape {
	return []Shape{ShapeOrthogonal4, ShapeOrthogonal8, ShapeHex, ShapeTriangle}
}

// Unbounded is the extent value for a board with no edge along that axis
const Unbounded = 0

// GridTopology describes the board geometry for a whole game.
// It is set once at game setup and read-only afterwards.
type GridTopology struct {
	Shape  Shape `json:"shape" yaml:"shape"`
	Wrap   bool  `json:"wrap" yaml:"wrap"`
	Height int   `json:"height" yaml:"height"` // Number of rows, 0 if unbounded
	Width  int   `json:"width" yaml:"width"`   // Number of columns, 0 if unbounded
}

// DefaultTopology is an unbounded square grid without diagonal neighbors
func DefaultTopology() GridTopology {
	return GridTopology{Shape: ShapeOrthogonal4}
}

// Validate checks the topology is one that cells can be laid out on
func (t GridTopology) Validate() error {
	if !slices.Contains(ValidShapes(), t.Shape) {
		return fmt.Errorf("%w: unknown shape %q, want one of %v", ErrInvalidTopology, t.Shape, ValidShapes())
	}
	if t.Height < 0 || t.Width < 0 {
		return fmt.Errorf("%w: negative extent", ErrInvalidTopology)
	}
	if t.Height%2 != 0 || t.Width%2 != 0 {
		return fmt.Errorf("%w: bounded extents must be even", ErrInvalidTopology)
	}
	if t.Wrap && (t.Height == Unbounded || t.Width == Unbounded) {
		return fmt.Errorf("%w: wraparound needs a bounded height and width", ErrInvalidTopology)
	}
	return nil
}

// ScoringDirections returns the positive directions along which runs score
func (t GridTopology) ScoringDirections() []Direction {
	switch t.Shape {
	case ShapeOrthogonal4:
		return []Direction{North, East}
	case ShapeHex:
		return []Direction{North, NorthEast, SouthEast}
	case ShapeTriangle:
		return []Direction{NorthEast, East, SouthEast}
	default:
		return []Direction{North, NorthEast, East, SouthEast}
	}
}

// IsScoringAxis returns true if d is a positive direction that scores under this topology
func (t GridTopology) IsScoringAxis(d Direction) bool {
	for _, s := range t.ScoringDirections() {
		if s == d {
			return true
		}
	}
	return false
}

// IsValid returns true if (row, col) names a cell of this topology
func (t GridTopology) IsValid(row, col int) bool {
	if t.Shape == ShapeHex && mod(row+col, 2) != 0 {
		return false
	}
	return inExtent(row, t.Height) && inExtent(col, t.Width)
}

// IsValidCell is IsValid for a Cell value
func (t GridTopology) IsValidCell(c Cell) bool {
	return t.IsValid(c.Row, c.Col)
}

// NeighborExists returns true if c has a neighbor in direction d
func (t GridTopology) NeighborExists(c Cell, d Direction) bool {
	if !t.hasEdge(c, d) {
		return false
	}
	if t.Wrap {
		return true
	}
	next := t.stepOnce(c, d)
	return inExtent(next.Row, t.Height) && inExtent(next.Col, t.Width)
}

// Neighbors returns every existing neighbor of c, without duplicates
func (t GridTopology) Neighbors(c Cell) []Cell {
	seen := make(map[Cell]struct{}, len(AllDirections))
	result := make([]Cell, 0, len(AllDirections))
	for _, d := range AllDirections {
		if !t.NeighborExists(c, d) {
			continue
		}
		n := t.stepOnce(c, d)
		if _, ok := seen[n]; ok || n == c {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}

// Step returns the cell reached by moving count steps in direction d.
// A negative count moves the other way. Asking for a direction the cell has
// no edge in is a programming error and panics.
func (t GridTopology) Step(c Cell, d Direction, count int) Cell {
	if count < 0 {
		d = d.Opposite()
		count = -count
	}
	for i := 0; i < count; i++ {
		if !t.hasEdge(c, d) {
			panic(fmt.Sprintf("model: cell %s has no %s neighbor on a %s grid", c, d, t.Shape))
		}
		c = t.stepOnce(c, d)
	}
	return c
}

// Group returns an identifier for the line through c running along d.
// Two cells share a group iff they lie on the same line in that direction.
// On a wrapped board a diagonal closes into a ring after lcm(Height, Width)
// rows, so its identifier is reduced modulo the number of such rings.
func (t GridTopology) Group(c Cell, d Direction) int {
	axis := t.lineAxis(d)
	rings := 0
	if t.Wrap && axis.IsDiagonal() {
		rings = gcd(t.Height, t.Width)
	}

	var group int
	if t.Shape == ShapeTriangle {
		switch axis {
		case East:
			return c.Row
		case NorthEast:
			group = floorDiv(c.Row-c.Col, 2)
		default: // SouthEast
			group = floorDiv(c.Row+c.Col, 2)
		}
		// A triangle diagonal takes two cells to cross one row and one column
		rings /= 2
	} else {
		dr, dc := t.offsets(axis)
		group = dc*c.Row - dr*c.Col
	}

	if rings > 0 {
		return mod(group, rings)
	}
	return group
}

// Ortho returns the position of c along direction d. Cells on the same line
// orthogonal to d share an ortho value, and consecutive cells of a line
// running along d have consecutive ortho values.
func (t GridTopology) Ortho(c Cell, d Direction) int {
	axis := t.lineAxis(d)
	if t.Shape == ShapeTriangle {
		switch axis {
		case East:
			return c.Col
		case NorthEast:
			return c.Row + c.Col
		default: // SouthEast
			return c.Col - c.Row
		}
	}
	dr, dc := t.offsets(axis)
	return floorDiv(dr*c.Row+dc*c.Col, dr*dr+dc*dc)
}

// lineAxis returns the positive axis of d after checking lines along it exist
func (t GridTopology) lineAxis(d Direction) Direction {
	axis := d.Axis()
	switch {
	case t.Shape == ShapeHex && axis == East:
		panic("model: hex grids have no east-west lines")
	case t.Shape == ShapeTriangle && axis == North:
		panic("model: triangle grids have no north-south lines")
	}
	return axis
}

// hasEdge reports whether the tiling gives c a neighbor in direction d,
// ignoring board edges
func (t GridTopology) hasEdge(c Cell, d Direction) bool {
	switch t.Shape {
	case ShapeOrthogonal4:
		return !d.IsDiagonal()
	case ShapeHex:
		return !d.IsEastOrWest()
	case ShapeTriangle:
		switch d {
		case North:
			return c.parity() == 0
		case South:
			return c.parity() == 1
		default:
			return true
		}
	default:
		return d.IsValid()
	}
}

// stepOnce moves a single step without checking the tiling allows it
func (t GridTopology) stepOnce(c Cell, d Direction) Cell {
	if t.Shape == ShapeTriangle && d.IsDiagonal() {
		d = triangleEdge(c, d)
	}
	dr, dc := t.offsets(d)
	row, col := c.Row+dr, c.Col+dc
	if t.Wrap {
		row = wrapCoordinate(row, t.Height)
		col = wrapCoordinate(col, t.Width)
	}
	return Cell{Row: row, Col: col}
}

// offsets returns the (row, col) change of one step along d
func (t GridTopology) offsets(d Direction) (int, int) {
	dr, dc := d.UnitOffsets()
	if t.Shape == ShapeHex && d.IsNorthOrSouth() {
		dr *= 2
	}
	return dr, dc
}

// triangleEdge maps a diagonal direction to the edge a triangle actually
// shares with its neighbor that way. Even cells have a north edge, odd
// cells a south edge.
func triangleEdge(c Cell, d Direction) Direction {
	even := c.parity() == 0
	switch d {
	case NorthEast:
		if even {
			return North
		}
		return East
	case SouthEast:
		if even {
			return East
		}
		return South
	case SouthWest:
		if even {
			return West
		}
		return South
	default: // NorthWest
		if even {
			return North
		}
		return West
	}
}

// inExtent checks a coordinate lies in [-extent/2, extent/2)
func inExtent(v, extent int) bool {
	if extent == Unbounded {
		return true
	}
	half := extent / 2
	return v >= -half && v < half
}

// wrapCoordinate reduces v back into [-extent/2, extent/2)
func wrapCoordinate(v, extent int) int {
	if extent == Unbounded {
		return v
	}
	half := extent / 2
	return mod(v+half, extent) - half
}
