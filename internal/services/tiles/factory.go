package tiles

import (
	"fmt"

	"github.com/mcoot/tilegame-go/internal/dependencies/random"
	"github.com/mcoot/tilegame-go/internal/model"
)

// Factory mints tiles for one game. IDs are unique, non-zero and strictly
// increasing; a factory resumed from a saved game continues where it left off.
type Factory struct {
	rules        model.TileRules
	bonusPercent int
	random       random.Random
	lastID       model.TileID
}

// NewFactory creates a factory whose next tile gets the ID after lastID
func NewFactory(rules model.TileRules, bonusPercent int, rnd random.Random, lastID model.TileID) *Factory {
	return &Factory{
		rules:        rules,
		bonusPercent: bonusPercent,
		random:       rnd,
		lastID:       lastID,
	}
}

// LastID returns the ID of the most recently minted tile, 0 if none
func (f *Factory) LastID() model.TileID {
	return f.lastID
}

// Mint creates a new tile with the given combo
func (f *Factory) Mint(combo model.Combo) (model.Tile, error) {
	if !f.rules.Allows(combo) {
		return model.Tile{}, fmt.Errorf("%w: %s does not fit the tile rules", model.ErrInvalidCombo, combo)
	}
	f.lastID++
	return model.Tile{
		ID:    f.lastID,
		Combo: combo,
		Bonus: random.Percent(f.random, f.bonusPercent),
	}, nil
}

// FullSet mints every combo the rules allow, each clones+1 times, in
// combo order
func (f *Factory) FullSet(clones int) []model.Tile {
	combos := AllCombos(f.rules)
	set := make([]model.Tile, 0, len(combos)*(clones+1))
	for _, combo := range combos {
		for range clones + 1 {
			// Every combo from AllCombos fits the rules
			tile, err := f.Mint(combo)
			if err != nil {
				panic(err)
			}
			set = append(set, tile)
		}
	}
	return set
}

// AllCombos enumerates the combos allowed by the rules, last attribute
// varying fastest
func AllCombos(rules model.TileRules) []model.Combo {
	n := rules.AttributeCount()
	combos := make([]model.Combo, 0, rules.ComboCount())
	values := make([]int, n)
	for {
		combos = append(combos, model.MustCombo(values...))

		i := n - 1
		for i >= 0 && values[i] == rules.MaxValue(i) {
			values[i] = 0
			i--
		}
		if i < 0 {
			return combos
		}
		values[i]++
	}
}
