package model

import "fmt"

// TileRules fixes how many attributes a tile has and the range of each
type TileRules struct {
	// MaxValues holds the largest value of each attribute; its length is the
	// attribute count
	MaxValues []int `json:"max_values" yaml:"max_values"`
}

// DefaultTileRules has two attributes with six values each
func DefaultTileRules() TileRules {
	return TileRules{MaxValues: []int{5, 5}}
}

// Validate checks the attribute count and ranges
func (r TileRules) Validate() error {
	n := len(r.MaxValues)
	if n < MinAttributeCount || n > MaxAttributeCount {
		return fmt.Errorf("%w: %d attributes, want %d to %d", ErrInvalidTileRules, n, MinAttributeCount, MaxAttributeCount)
	}
	for i, m := range r.MaxValues {
		if m < 0 || m > MaxAttributeValue {
			return fmt.Errorf("%w: attribute %d has max value %d", ErrInvalidTileRules, i, m)
		}
	}
	return nil
}

// AttributeCount returns the number of attributes per tile
func (r TileRules) AttributeCount() int {
	return len(r.MaxValues)
}

// MaxValue returns the largest value attribute i can take
func (r TileRules) MaxValue(i int) int {
	return r.MaxValues[i]
}

// ComboCount returns the number of distinct combos
func (r TileRules) ComboCount() int {
	total := 1
	for _, m := range r.MaxValues {
		total *= m + 1
	}
	return total
}

// Allows returns true if the combo has the right shape for these rules
func (r TileRules) Allows(c Combo) bool {
	if c.Len() != len(r.MaxValues) {
		return false
	}
	for i, m := range r.MaxValues {
		if c.Attribute(i) > m {
			return false
		}
	}
	return true
}

// Rules is the immutable game-wide configuration passed to the board
type Rules struct {
	Grid  GridTopology `json:"grid" yaml:"grid"`
	Tiles TileRules    `json:"tiles" yaml:"tiles"`
}

// NewRules validates and combines a topology and tile rules
func NewRules(grid GridTopology, tiles TileRules) (Rules, error) {
	r := Rules{
		Grid:  grid,
		Tiles: TileRules{MaxValues: append([]int(nil), tiles.MaxValues...)},
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// DefaultRules returns an unbounded square grid with two six-valued attributes
func DefaultRules() Rules {
	return Rules{Grid: DefaultTopology(), Tiles: DefaultTileRules()}
}

// Validate checks both halves of the rules
func (r Rules) Validate() error {
	if err := r.Grid.Validate(); err != nil {
		return err
	}
	return r.Tiles.Validate()
}
