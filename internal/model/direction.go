package model

import "fmt"

// Direction is one of the eight compass directions on the board
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// PositiveDirections are the canonical axis directions, in scoring order
var PositiveDirections = []Direction{North, NorthEast, East, SouthEast}

// AllDirections lists every direction clockwise from North
var AllDirections = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionNames = [...]string{
	North:     "north",
	NorthEast: "northeast",
	East:      "east",
	SouthEast: "southeast",
	South:     "south",
	SouthWest: "southwest",
	West:      "west",
	NorthWest: "northwest",
}

var opposites = [...]Direction{
	North:     South,
	NorthEast: SouthWest,
	East:      West,
	SouthEast: NorthWest,
	South:     North,
	SouthWest: NorthEast,
	West:      East,
	NorthWest: SouthEast,
}

// Axis pairing is fixed: the orthogonal of a line is the other member of its
// square (N/E) or diagonal (NE/SE) pair.
var orthogonalAxes = [...]Direction{
	North:     East,
	NorthEast: SouthEast,
	East:      North,
	SouthEast: NorthEast,
	South:     East,
	SouthWest: SouthEast,
	West:      North,
	NorthWest: NorthEast,
}

// unit row/column offsets, North is +row and East is +col
var unitOffsets = [...][2]int{
	North:     {1, 0},
	NorthEast: {1, 1},
	East:      {0, 1},
	SouthEast: {-1, 1},
	South:     {-1, 0},
	SouthWest: {-1, -1},
	West:      {0, -1},
	NorthWest: {1, -1},
}

// IsValid returns true if d is one of the eight directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// String returns the lowercase compass name
func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way along the same line
func (d Direction) Opposite() Direction {
	d.mustBeValid()
	return opposites[d]
}

// IsPositive returns true for the four canonical axis directions
func (d Direction) IsPositive() bool {
	return d >= North && d <= SouthEast
}

// Axis returns the positive direction of the line through d and its opposite
func (d Direction) Axis() Direction {
	d.mustBeValid()
	if d.IsPositive() {
		return d
	}
	return opposites[d]
}

// OrthogonalAxis returns the positive direction perpendicular to d's line
func (d Direction) OrthogonalAxis() Direction {
	d.mustBeValid()
	return orthogonalAxes[d]
}

// IsDiagonal returns true for the four intercardinal directions
func (d Direction) IsDiagonal() bool {
	switch d {
	case NorthEast, SouthEast, SouthWest, NorthWest:
		return true
	default:
		return false
	}
}

// IsNorthOrSouth returns true for North and South
func (d Direction) IsNorthOrSouth() bool {
	return d == North || d == South
}

// IsEastOrWest returns true for East and West
func (d Direction) IsEastOrWest() bool {
	return d == East || d == West
}

// UnitOffsets returns the (row, col) change for a single step on a square grid
func (d Direction) UnitOffsets() (int, int) {
	d.mustBeValid()
	off := unitOffsets[d]
	return off[0], off[1]
}

// ParseDirection converts a compass name such as "northeast" to a Direction
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("cannot encode invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) mustBeValid() {
	if !d.IsValid() {
		panic(fmt.Sprintf("model: invalid direction %d", int(d)))
	}
}
