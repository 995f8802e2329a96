package request

import (
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/game"
)

// CreateGameRequest is the request body for starting a game. A nil config
// uses the server's configured rules.
type CreateGameRequest struct {
	Players []model.PlayerID  `json:"players"`
	Config  *model.GameConfig `json:"config,omitempty"`
}

// PlayRequest is the request body for checking or making a play
type PlayRequest struct {
	PlayerID model.PlayerID `json:"player_id"`
	Plays    []game.Play    `json:"plays"`
}

// SwapRequest is the request body for swapping tiles with the stock bag
type SwapRequest struct {
	PlayerID model.PlayerID `json:"player_id"`
	TileIDs  []model.TileID `json:"tile_ids"`
}

// PassRequest is the request body for passing a turn
type PassRequest struct {
	PlayerID model.PlayerID `json:"player_id"`
}
