package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Placement is one element of a move: a tile and where it goes.
// When Swap is set the tile goes back to the stock bag and Cell is ignored.
type Placement struct {
	Tile Tile `json:"tile"`
	Cell Cell `json:"cell"`
	Swap bool `json:"swap,omitempty"`
}

// String returns e.g. "#3[1-2]@(0,1)" or "#3[1-2]@swap"
func (p Placement) String() string {
	if p.Swap {
		return p.Tile.String() + "@swap"
	}
	return p.Tile.String() + "@" + p.Cell.String()
}

// Move is the set of placements a player makes in one turn.
// The zero value is a pass.
type Move struct {
	placements []Placement
}

// NewMove creates a move from placements, dropping exact duplicates
func NewMove(placements ...Placement) Move {
	var m Move
	for _, p := range placements {
		m.add(p)
	}
	return m
}

// AddPlay adds a tile played on a board cell
func (m *Move) AddPlay(t Tile, c Cell) {
	m.add(Placement{Tile: t, Cell: c})
}

// AddSwap adds a tile returned to the stock bag
func (m *Move) AddSwap(t Tile) {
	m.add(Placement{Tile: t, Swap: true})
}

func (m *Move) add(p Placement) {
	if p.Swap {
		p.Cell = Cell{}
	}
	if slices.Contains(m.placements, p) {
		return
	}
	m.placements = append(m.placements, p)
}

// Placements returns a copy of the placements in insertion order
func (m Move) Placements() []Placement {
	return slices.Clone(m.placements)
}

// Len returns the number of placements
func (m Move) Len() int {
	return len(m.placements)
}

// IsPass returns true for a move with no placements
func (m Move) IsPass() bool {
	return len(m.placements) == 0
}

// InvolvesSwap returns true if any tile goes to the stock bag
func (m Move) InvolvesSwap() bool {
	return lo.SomeBy(m.placements, func(p Placement) bool { return p.Swap })
}

// IsPureSwap returns true if the move is non-empty and every tile is swapped
func (m Move) IsPureSwap() bool {
	return len(m.placements) > 0 && lo.EveryBy(m.placements, func(p Placement) bool { return p.Swap })
}

// IsPlay returns true if the move is non-empty and no tile is swapped
func (m Move) IsPlay() bool {
	return len(m.placements) > 0 && !m.InvolvesSwap()
}

// RepeatsTile returns true if a tile ID appears more than once
func (m Move) RepeatsTile() bool {
	ids := m.TileIDs()
	return len(lo.Uniq(ids)) != len(ids)
}

// RepeatsCell returns true if two plays target the same cell
func (m Move) RepeatsCell() bool {
	cells := m.Cells()
	return len(lo.Uniq(cells)) != len(cells)
}

// Cells returns the target cells of the plays, in insertion order
func (m Move) Cells() []Cell {
	return lo.FilterMap(m.placements, func(p Placement, _ int) (Cell, bool) {
		return p.Cell, !p.Swap
	})
}

// Tiles returns the tiles of every placement, in insertion order
func (m Move) Tiles() []Tile {
	return lo.Map(m.placements, func(p Placement, _ int) Tile { return p.Tile })
}

// TileIDs returns the IDs of every placed tile, in insertion order
func (m Move) TileIDs() []TileID {
	return lo.Map(m.placements, func(p Placement, _ int) TileID { return p.Tile.ID })
}

// String lists the placements, or "pass"
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	parts := lo.Map(m.placements, func(p Placement, _ int) string { return p.String() })
	return strings.Join(parts, " ")
}
