package response

import (
	"time"

	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/game"
)

// Game represents a game in API responses
type Game struct {
	ID                string                  `json:"id"`
	State             string                  `json:"state"`
	Rules             model.Rules             `json:"rules"`
	Players           []string                `json:"players"`
	CurrentPlayer     string                  `json:"current_player,omitempty"`
	Turn              int                     `json:"turn"`
	Scores            map[string]int          `json:"scores"`
	Hands             map[string][]model.Tile `json:"hands"`
	HandSize          int                     `json:"hand_size"`
	StockCount        int                     `json:"stock_count"`
	ConsecutivePasses int                     `json:"consecutive_passes"`
	Winner            *string                 `json:"winner,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// GameFromModel converts a model.Game. The stock bag itself is never
// exposed, only its size.
func GameFromModel(g *model.Game) Game {
	resp := Game{
		ID:                string(g.ID),
		State:             string(g.State),
		Rules:             g.Rules,
		Players:           make([]string, len(g.Players)),
		Turn:              g.CurrentTurn,
		Scores:            make(map[string]int, len(g.Players)),
		Hands:             make(map[string][]model.Tile, len(g.Players)),
		HandSize:          g.HandSize,
		StockCount:        len(g.Stock),
		ConsecutivePasses: g.ConsecutivePasses,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
	for i, p := range g.Players {
		resp.Players[i] = string(p)
		resp.Scores[string(p)] = g.Scores[p]
		resp.Hands[string(p)] = g.Hand(p)
	}
	if g.IsComplete() {
		if w := g.Winner(); w != "" {
			winner := string(w)
			resp.Winner = &winner
		}
	} else {
		resp.CurrentPlayer = string(g.CurrentPlayer())
	}
	return resp
}

// Extremes is the bounding box of the occupied cells
type Extremes struct {
	North int `json:"north"`
	South int `json:"south"`
	East  int `json:"east"`
	West  int `json:"west"`
}

// Board represents a board in API responses
type Board struct {
	Rules    model.Rules        `json:"rules"`
	Tiles    []model.PlacedTile `json:"tiles"`
	Extremes Extremes           `json:"extremes"`
}

// BoardFromModel converts a model.Board
func BoardFromModel(b *model.Board) Board {
	north, south, east, west := b.Extremes()
	return Board{
		Rules:    b.Rules(),
		Tiles:    b.Placed(),
		Extremes: Extremes{North: north, South: south, East: east, West: west},
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []string `json:"games"`
}

// Turn is the response to a play, swap or pass
type Turn struct {
	Game  Game             `json:"game"`
	Score *model.MoveScore `json:"score,omitempty"`
	Drawn []model.Tile     `json:"drawn"`
}

// TurnFromResult converts a game.TurnResult
func TurnFromResult(r *game.TurnResult) Turn {
	drawn := r.Drawn
	if drawn == nil {
		drawn = []model.Tile{}
	}
	return Turn{
		Game:  GameFromModel(r.Game),
		Score: r.Score,
		Drawn: drawn,
	}
}

// Check is the response to a move check. A rejected move is a normal
// answer here, not an error.
type Check struct {
	Legal   bool   `json:"legal"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
