package model

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// PlayerID identifies a player within a game
type PlayerID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying  GameState = "playing"  // Players taking turns
	GameStateComplete GameState = "complete" // No more moves possible
)

// Game is one in-progress or finished game. The board lives separately in storage.
type Game struct {
	ID    GameID    `json:"id"`
	State GameState `json:"state"`
	Rules Rules     `json:"rules"`

	Players  []PlayerID          `json:"players"`
	Hands    map[PlayerID][]Tile `json:"hands"`
	Scores   map[PlayerID]int    `json:"scores"`
	HandSize int                 `json:"hand_size"`
	Stock    []Tile              `json:"stock"` // Stock bag, drawn from the end

	// Turn management
	CurrentTurn       int `json:"current_turn"`       // 0-indexed turn number
	CurrentIdx        int `json:"current_idx"`        // Index into Players for the player to move
	ConsecutivePasses int `json:"consecutive_passes"` // Passes since the last play or swap

	// Last tile ID handed out by the tile factory
	LastTileID TileID `json:"last_tile_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentPlayer returns the PlayerID of the player to move
func (g *Game) CurrentPlayer() PlayerID {
	if len(g.Players) == 0 {
		return ""
	}
	return g.Players[g.CurrentIdx]
}

// HasPlayer returns true if the player is part of the game
func (g *Game) HasPlayer(id PlayerID) bool {
	return slices.Contains(g.Players, id)
}

// IsComplete returns true once the game has ended
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// Hand returns the tiles held by a player
func (g *Game) Hand(id PlayerID) []Tile {
	return g.Hands[id]
}

// Clone returns a copy that shares no slices or maps with g
func (g *Game) Clone() *Game {
	clone := *g
	clone.Rules.Tiles.MaxValues = slices.Clone(g.Rules.Tiles.MaxValues)
	clone.Players = slices.Clone(g.Players)
	clone.Stock = slices.Clone(g.Stock)
	clone.Scores = maps.Clone(g.Scores)
	if g.Hands != nil {
		clone.Hands = make(map[PlayerID][]Tile, len(g.Hands))
		for p, hand := range g.Hands {
			clone.Hands[p] = slices.Clone(hand)
		}
	}
	return &clone
}

// Winner returns the player with the highest score, or empty string on a tie
func (g *Game) Winner() PlayerID {
	var winner PlayerID
	best, ties := -1, 0
	for _, p := range g.Players {
		switch score := g.Scores[p]; {
		case score > best:
			winner, best, ties = p, score, 1
		case score == best:
			ties++
		}
	}
	if ties != 1 {
		return ""
	}
	return winner
}

// Game setup limits
const (
	MinPlayers     = 1
	MaxPlayers     = 8
	MaxHandSize    = 12
	MaxClones      = 9
	MaxStockSize   = 10000
	MaxBonusChance = 100

	DefaultHand   = 6
	DefaultClones = 2
	DefaultBonus  = 0
)

// GameConfig holds everything needed to set up a new game
type GameConfig struct {
	Rules        Rules `json:"rules"`
	HandSize     int   `json:"hand_size"`
	Clones       int   `json:"clones"`        // Extra copies of every combo in the stock
	BonusPercent int   `json:"bonus_percent"` // Chance that a minted tile is a bonus tile
}

// DefaultGameConfig returns the standard two-attribute game
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rules:        DefaultRules(),
		HandSize:     DefaultHand,
		Clones:       DefaultClones,
		BonusPercent: DefaultBonus,
	}
}

// Validate checks the game configuration and its rules
func (c GameConfig) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.HandSize < 1 || c.HandSize > MaxHandSize {
		return fmt.Errorf("%w: hand size must be between 1 and %d", ErrInvalidGameConfig, MaxHandSize)
	}
	if c.Clones < 0 || c.Clones > MaxClones {
		return fmt.Errorf("%w: clones must be between 0 and %d", ErrInvalidGameConfig, MaxClones)
	}
	if c.BonusPercent < 0 || c.BonusPercent > MaxBonusChance {
		return fmt.Errorf("%w: bonus percent must be between 0 and %d", ErrInvalidGameConfig, MaxBonusChance)
	}
	if size := c.StockSize(); size > MaxStockSize {
		return fmt.Errorf("%w: stock of %d tiles exceeds %d", ErrInvalidGameConfig, size, MaxStockSize)
	}
	return nil
}

// StockSize is the number of tiles in a full stock bag
func (c GameConfig) StockSize() int {
	return c.Rules.Tiles.ComboCount() * (c.Clones + 1)
}
