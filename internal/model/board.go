package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Board is the sparse grid of placed tiles for one game.
// A cell is present in the map iff it is occupied.
type Board struct {
	rules Rules
	cells map[Cell]Tile

	// Bounding box of occupied cells, all zero while the board is empty
	north int // Largest occupied row
	south int // Smallest occupied row
	east  int // Largest occupied column
	west  int // Smallest occupied column
}

// NewBoard creates an empty board laid out by the given rules
func NewBoard(rules Rules) *Board {
	return &Board{
		rules: rules,
		cells: make(map[Cell]Tile),
	}
}

// Rules returns the rules the board was created under
func (b *Board) Rules() Rules {
	return b.rules
}

// Topology returns the board's grid topology
func (b *Board) Topology() GridTopology {
	return b.rules.Grid
}

// Count returns the number of occupied cells
func (b *Board) Count() int {
	return len(b.cells)
}

// HasTiles returns true if any cell is occupied
func (b *Board) HasTiles() bool {
	return len(b.cells) > 0
}

// Get returns the tile on a cell, if any
func (b *Board) Get(c Cell) (Tile, bool) {
	t, ok := b.cells[c]
	return t, ok
}

// IsEmpty returns true if no tile is on the cell
func (b *Board) IsEmpty(c Cell) bool {
	_, ok := b.cells[c]
	return !ok
}

// PlayOnCell puts a tile on an empty cell. The caller must have validated
// the move; playing on an occupied or invalid cell panics.
func (b *Board) PlayOnCell(c Cell, t Tile) {
	if !b.rules.Grid.IsValidCell(c) {
		panic(fmt.Sprintf("model: cell %s is not on the board", c))
	}
	if !b.IsEmpty(c) {
		panic(fmt.Sprintf("model: cell %s is already occupied", c))
	}

	if len(b.cells) == 0 {
		b.north, b.south, b.east, b.west = c.Row, c.Row, c.Col, c.Col
	} else {
		b.north = max(b.north, c.Row)
		b.south = min(b.south, c.Row)
		b.east = max(b.east, c.Col)
		b.west = min(b.west, c.Col)
	}
	b.cells[c] = t
}

// MakeEmpty removes the tile from an occupied cell. Emptying an empty cell panics.
func (b *Board) MakeEmpty(c Cell) {
	if b.IsEmpty(c) {
		panic(fmt.Sprintf("model: cell %s is already empty", c))
	}
	delete(b.cells, c)
	b.recomputeExtremes()
}

func (b *Board) recomputeExtremes() {
	b.north, b.south, b.east, b.west = 0, 0, 0, 0
	first := true
	for c := range b.cells {
		if first {
			b.north, b.south, b.east, b.west = c.Row, c.Row, c.Col, c.Col
			first = false
			continue
		}
		b.north = max(b.north, c.Row)
		b.south = min(b.south, c.Row)
		b.east = max(b.east, c.Col)
		b.west = min(b.west, c.Col)
	}
}

// Extremes returns the north-, south-, east- and west-most occupied coordinates
func (b *Board) Extremes() (north, south, east, west int) {
	return b.north, b.south, b.east, b.west
}

// Locate finds the cell holding the tile with the given ID
func (b *Board) Locate(id TileID) (Cell, bool) {
	for c, t := range b.cells {
		if t.ID == id {
			return c, true
		}
	}
	return Cell{}, false
}

// Cells returns the occupied cells in row-major order
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, len(b.cells))
	for c := range b.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, Cell.Compare)
	return cells
}

// GetLimits returns the first and last cells of the run of occupied cells
// through c along direction d. c must be occupied.
func (b *Board) GetLimits(c Cell, d Direction) (first, last Cell) {
	if b.IsEmpty(c) {
		panic(fmt.Sprintf("model: cannot find limits from empty cell %s", c))
	}
	grid := b.rules.Grid
	back := d.Opposite()

	// On a wrapping board a run can close into a ring; stop on returning to c
	first = c
	for grid.NeighborExists(first, back) {
		prev := grid.Step(first, back, 1)
		if prev == c || b.IsEmpty(prev) {
			break
		}
		first = prev
	}

	last = c
	for grid.NeighborExists(last, d) {
		next := grid.Step(last, d, 1)
		if next == first || b.IsEmpty(next) {
			break
		}
		last = next
	}
	return first, last
}

// RunCells returns every cell of the run through c along d, first to last
func (b *Board) RunCells(c Cell, d Direction) []Cell {
	first, last := b.GetLimits(c, d)
	grid := b.rules.Grid
	run := []Cell{first}
	for cur := first; cur != last; {
		cur = grid.Step(cur, d, 1)
		run = append(run, cur)
	}
	return run
}

// Clone returns an independent copy for speculative play
func (b *Board) Clone() *Board {
	clone := &Board{
		rules: Rules{
			Grid:  b.rules.Grid,
			Tiles: TileRules{MaxValues: slices.Clone(b.rules.Tiles.MaxValues)},
		},
		cells: make(map[Cell]Tile, len(b.cells)),
		north: b.north,
		south: b.south,
		east:  b.east,
		west:  b.west,
	}
	for c, t := range b.cells {
		clone.cells[c] = t
	}
	return clone
}

// Equal returns true if both boards hold the same tiles on the same cells
func (b *Board) Equal(other *Board) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for c, t := range b.cells {
		if ot, ok := other.cells[c]; !ok || ot != t {
			return false
		}
	}
	return b.north == other.north && b.south == other.south &&
		b.east == other.east && b.west == other.west
}

// boardJSON is the wire shape of a board
type boardJSON struct {
	Rules Rules        `json:"rules"`
	Tiles []PlacedTile `json:"tiles"`
}

// PlacedTile is a tile together with the cell it occupies
type PlacedTile struct {
	Cell Cell `json:"cell"`
	Tile Tile `json:"tile"`
}

// Placed returns every tile on the board with its cell, in row-major order
func (b *Board) Placed() []PlacedTile {
	cells := b.Cells()
	placed := make([]PlacedTile, len(cells))
	for i, c := range cells {
		placed[i] = PlacedTile{Cell: c, Tile: b.cells[c]}
	}
	return placed
}

// MarshalJSON encodes the rules and the placed tiles
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Rules: b.rules, Tiles: b.Placed()})
}

// UnmarshalJSON rebuilds the board, recomputing the extremes. Stored rules
// are validated again since the geometry depends on them.
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := raw.Rules.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	*b = *NewBoard(raw.Rules)
	for _, p := range raw.Tiles {
		if !b.rules.Grid.IsValidCell(p.Cell) || !b.IsEmpty(p.Cell) {
			return fmt.Errorf("board: cannot place tile %s on %s", p.Tile, p.Cell)
		}
		b.PlayOnCell(p.Cell, p.Tile)
	}
	return nil
}
