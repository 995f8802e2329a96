package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TopologySuite struct {
	suite.Suite
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}

func (s *TopologySuite) TestValidate() {
	tests := []struct {
		name string
		grid GridTopology
		ok   bool
	}{
		{"default", DefaultTopology(), true},
		{"bounded hex", GridTopology{Shape: ShapeHex, Height: 8, Width: 6}, true},
		{"wrapped triangle", GridTopology{Shape: ShapeTriangle, Wrap: true, Height: 4, Width: 4}, true},
		{"one bounded axis", GridTopology{Shape: ShapeOrthogonal8, Height: 10}, true},
		{"unknown shape", GridTopology{Shape: "octagon"}, false},
		{"empty shape", GridTopology{}, false},
		{"odd height", GridTopology{Shape: ShapeOrthogonal4, Height: 3, Width: 4}, false},
		{"negative width", GridTopology{Shape: ShapeOrthogonal4, Width: -2}, false},
		{"wrap unbounded", GridTopology{Shape: ShapeOrthogonal4, Wrap: true, Height: 4}, false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.grid.Validate()
			if tt.ok {
				s.NoError(err)
			} else {
				s.ErrorIs(err, ErrInvalidTopology)
			}
		})
	}
}

func (s *TopologySuite) TestScoringDirections() {
	s.Equal([]Direction{North, East}, GridTopology{Shape: ShapeOrthogonal4}.ScoringDirections())
	s.Equal([]Direction{North, NorthEast, East, SouthEast}, GridTopology{Shape: ShapeOrthogonal8}.ScoringDirections())
	s.Equal([]Direction{North, NorthEast, SouthEast}, GridTopology{Shape: ShapeHex}.ScoringDirections())
	s.Equal([]Direction{NorthEast, East, SouthEast}, GridTopology{Shape: ShapeTriangle}.ScoringDirections())

	s.True(GridTopology{Shape: ShapeHex}.IsScoringAxis(SouthEast))
	s.False(GridTopology{Shape: ShapeHex}.IsScoringAxis(East))
}

func (s *TopologySuite) TestHexCellsHaveEvenParity() {
	hex := GridTopology{Shape: ShapeHex}
	s.True(hex.IsValid(0, 0))
	s.False(hex.IsValid(0, 1))
	s.True(hex.IsValid(0, 2))
	s.True(hex.IsValid(1, 1))
	s.True(hex.IsValid(-3, 1))
	s.False(hex.IsValid(-3, 2))
}

func (s *TopologySuite) TestBoundedExtents() {
	grid := GridTopology{Shape: ShapeOrthogonal4, Height: 4, Width: 6}
	s.True(grid.IsValid(-2, -3))
	s.True(grid.IsValid(1, 2))
	s.False(grid.IsValid(2, 0))
	s.False(grid.IsValid(0, -4))

	s.True(grid.NeighborExists(NewCell(1, 0), South))
	s.False(grid.NeighborExists(NewCell(1, 0), North))
	s.False(grid.NeighborExists(NewCell(0, 2), East))
	s.Len(grid.Neighbors(NewCell(1, 2)), 2)
}

func (s *TopologySuite) TestNeighborCounts() {
	origin := NewCell(0, 0)
	s.Len(GridTopology{Shape: ShapeOrthogonal4}.Neighbors(origin), 4)
	s.Len(GridTopology{Shape: ShapeOrthogonal8}.Neighbors(origin), 8)
	s.Len(GridTopology{Shape: ShapeHex}.Neighbors(origin), 6)
	s.Len(GridTopology{Shape: ShapeTriangle}.Neighbors(origin), 3)
	s.Len(GridTopology{Shape: ShapeTriangle}.Neighbors(NewCell(0, 1)), 3)
}

func (s *TopologySuite) TestHexSteps() {
	hex := GridTopology{Shape: ShapeHex}
	origin := NewCell(0, 0)
	s.Equal(NewCell(2, 0), hex.Step(origin, North, 1))
	s.Equal(NewCell(1, 1), hex.Step(origin, NorthEast, 1))
	s.Equal(NewCell(-1, 1), hex.Step(origin, SouthEast, 1))
	s.Equal(NewCell(-4, 0), hex.Step(origin, North, -2))
	s.Panics(func() { hex.Step(origin, East, 1) })
}

func (s *TopologySuite) TestTriangleSteps() {
	tri := GridTopology{Shape: ShapeTriangle}

	// An even cell points up and has a north edge
	s.Equal(NewCell(1, 0), tri.Step(NewCell(0, 0), North, 1))
	s.Equal(NewCell(1, 0), tri.Step(NewCell(0, 0), NorthEast, 1))
	s.Equal(NewCell(0, 1), tri.Step(NewCell(0, 0), SouthEast, 1))
	s.Panics(func() { tri.Step(NewCell(0, 0), South, 1) })

	// An odd cell points down
	s.Equal(NewCell(1, 1), tri.Step(NewCell(1, 0), NorthEast, 1))
	s.Equal(NewCell(0, 0), tri.Step(NewCell(1, 0), SouthEast, 1))
	s.Panics(func() { tri.Step(NewCell(0, 1), North, 1) })
}

func (s *TopologySuite) TestWrapStaysOnBoard() {
	grid := GridTopology{Shape: ShapeOrthogonal4, Wrap: true, Height: 4, Width: 4}
	s.Equal(NewCell(0, -2), grid.Step(NewCell(0, 1), East, 1))
	s.Equal(NewCell(-2, 0), grid.Step(NewCell(1, 0), North, 1))
	s.Equal(NewCell(1, 0), grid.Step(NewCell(-2, 0), South, 1))
	s.Equal(NewCell(0, 0), grid.Step(NewCell(0, 0), East, 4))
	s.False(grid.NeighborExists(NewCell(1, 1), NorthEast))
	s.True(grid.NeighborExists(NewCell(1, 1), North))
}

func (s *TopologySuite) TestGroupIdentifiesLines() {
	sq := GridTopology{Shape: ShapeOrthogonal8}
	s.Equal(sq.Group(NewCell(3, -1), East), sq.Group(NewCell(3, 7), East))
	s.NotEqual(sq.Group(NewCell(3, -1), East), sq.Group(NewCell(4, -1), East))
	s.Equal(sq.Group(NewCell(2, 5), North), sq.Group(NewCell(-6, 5), South))
	s.Equal(sq.Group(NewCell(0, 0), NorthEast), sq.Group(NewCell(3, 3), NorthEast))
	s.Equal(sq.Group(NewCell(0, 0), SouthEast), sq.Group(NewCell(-2, 2), NorthWest))
}

func (s *TopologySuite) TestGroupFollowsSteps() {
	shapes := []GridTopology{
		{Shape: ShapeOrthogonal4},
		{Shape: ShapeOrthogonal8},
		{Shape: ShapeHex},
		{Shape: ShapeTriangle},
	}
	for _, grid := range shapes {
		s.Run(string(grid.Shape), func() {
			for _, dir := range grid.ScoringDirections() {
				c := StartCell
				group := grid.Group(c, dir)
				ortho := grid.Ortho(c, dir)
				for i := 0; i < 5; i++ {
					next := grid.Step(c, dir, 1)
					s.Equal(group, grid.Group(next, dir), "%s along %s", next, dir)
					s.Greater(grid.Ortho(next, dir), ortho)
					c, ortho = next, grid.Ortho(next, dir)
				}
			}
		})
	}
}

func (s *TopologySuite) TestWrappedGroupsFollowRings() {
	for _, shape := range []Shape{ShapeOrthogonal8, ShapeHex, ShapeTriangle} {
		for _, extents := range [][2]int{{4, 6}, {6, 4}, {4, 4}, {2, 8}} {
			grid := GridTopology{Shape: shape, Wrap: true, Height: extents[0], Width: extents[1]}
			s.Run(fmt.Sprintf("%s %dx%d", shape, grid.Height, grid.Width), func() {
				cells := gridCells(grid)
				for _, dir := range grid.ScoringDirections() {
					for _, start := range cells {
						ring := map[Cell]bool{start: true}
						for c := grid.Step(start, dir, 1); c != start; c = grid.Step(c, dir, 1) {
							s.Require().Less(len(ring), len(cells), "%s never returns along %s", start, dir)
							ring[c] = true
						}

						group := grid.Group(start, dir)
						for _, c := range cells {
							s.Equal(ring[c], grid.Group(c, dir) == group,
								"%s and %s along %s", start, c, dir)
						}
					}
				}
			})
		}
	}
}

func (s *TopologySuite) TestWrappedDiagonalAcrossTheSeam() {
	grid := GridTopology{Shape: ShapeOrthogonal8, Wrap: true, Height: 4, Width: 6}
	next := grid.Step(NewCell(1, 1), NorthEast, 1)

	s.Equal(NewCell(-2, 2), next)
	s.Equal(grid.Group(NewCell(0, 0), NorthEast), grid.Group(next, NorthEast))
}

// gridCells lists every valid cell of a bounded grid
func gridCells(grid GridTopology) []Cell {
	var cells []Cell
	for row := -grid.Height / 2; row < grid.Height/2; row++ {
		for col := -grid.Width / 2; col < grid.Width/2; col++ {
			if grid.IsValid(row, col) {
				cells = append(cells, NewCell(row, col))
			}
		}
	}
	return cells
}

func (s *TopologySuite) TestTriangleEdgeNeighborsShareDiagonals() {
	tri := GridTopology{Shape: ShapeTriangle}
	below, above := NewCell(0, 0), NewCell(1, 0)
	s.Equal(tri.Group(below, NorthEast), tri.Group(above, NorthEast))
	s.Equal(tri.Group(below, SouthEast), tri.Group(above, SouthEast))
	s.NotEqual(tri.Group(below, East), tri.Group(above, East))
}

func (s *TopologySuite) TestMissingLinesPanic() {
	s.Panics(func() { GridTopology{Shape: ShapeHex}.Group(StartCell, East) })
	s.Panics(func() { GridTopology{Shape: ShapeTriangle}.Group(StartCell, North) })
}
