package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Limits on the shape of a combo, fixed for every game
const (
	MinAttributeCount = 2
	MaxAttributeCount = 5
	MaxAttributeValue = 8
)

// TileID uniquely identifies a tile within a game. Zero is never a valid ID.
type TileID int

// Combo is the face of a tile: one value per attribute.
// It is a comparable value so tiles can be used as map keys.
type Combo struct {
	values [MaxAttributeCount]int
	count  int
}

// NewCombo creates a combo from attribute values
func NewCombo(values ...int) (Combo, error) {
	if len(values) < 1 || len(values) > MaxAttributeCount {
		return Combo{}, fmt.Errorf("%w: %d attributes", ErrInvalidCombo, len(values))
	}
	var c Combo
	for i, v := range values {
		if v < 0 || v > MaxAttributeValue {
			return Combo{}, fmt.Errorf("%w: attribute %d has value %d", ErrInvalidCombo, i, v)
		}
		c.values[i] = v
	}
	c.count = len(values)
	return c, nil
}

// MustCombo is NewCombo for values known to be valid
func MustCombo(values ...int) Combo {
	c, err := NewCombo(values...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of attributes
func (c Combo) Len() int {
	return c.count
}

// Attribute returns the value of the i-th attribute
func (c Combo) Attribute(i int) int {
	if i < 0 || i >= c.count {
		panic(fmt.Sprintf("model: attribute %d out of range for %d-attribute combo", i, c.count))
	}
	return c.values[i]
}

// Values returns a copy of the attribute values
func (c Combo) Values() []int {
	out := make([]int, c.count)
	copy(out, c.values[:c.count])
	return out
}

// matches counts attributes on which both combos agree
func (c Combo) matches(other Combo) (count int, last int) {
	last = -1
	n := min(c.count, other.count)
	for i := 0; i < n; i++ {
		if c.values[i] == other.values[i] {
			count++
			last = i
		}
	}
	return count, last
}

// CompatibleWith returns true if the combos agree on exactly one attribute
func (c Combo) CompatibleWith(other Combo) bool {
	n, _ := c.matches(other)
	return n == 1
}

// CommonAttribute returns the index of the single attribute two compatible
// combos share. ok is false if they are not compatible.
func (c Combo) CommonAttribute(other Combo) (index int, ok bool) {
	n, last := c.matches(other)
	if n != 1 {
		return -1, false
	}
	return last, true
}

// String returns the values joined by dashes, e.g. "3-0-5"
func (c Combo) String() string {
	parts := make([]string, c.count)
	for i := 0; i < c.count; i++ {
		parts[i] = strconv.Itoa(c.values[i])
	}
	return strings.Join(parts, "-")
}

// MarshalJSON encodes the combo as an array of values
func (c Combo) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Values())
}

// UnmarshalJSON decodes an array of values
func (c *Combo) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	parsed, err := NewCombo(values...)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Tile is a single playing piece. Tiles are immutable once minted.
type Tile struct {
	ID    TileID `json:"id"`
	Combo Combo  `json:"combo"`
	Bonus bool   `json:"bonus,omitempty"`
}

// IsCloneOf returns true if the tiles look identical but are different pieces
func (t Tile) IsCloneOf(other Tile) bool {
	return t.ID != other.ID && t.Combo == other.Combo && t.Bonus == other.Bonus
}

// CompatibleWith compares the faces of two tiles
func (t Tile) CompatibleWith(other Tile) bool {
	return t.Combo.CompatibleWith(other.Combo)
}

// String returns e.g. "#12[3-0-5]" with a trailing "*" for bonus tiles
func (t Tile) String() string {
	s := fmt.Sprintf("#%d[%s]", t.ID, t.Combo)
	if t.Bonus {
		s += "*"
	}
	return s
}
