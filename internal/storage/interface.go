package storage

import (
	"context"

	"github.com/mcoot/tilegame-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]model.GameID, error)

	// Board operations, one board per game
	SaveBoard(ctx context.Context, gameID model.GameID, board *model.Board) error
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	DeleteBoard(ctx context.Context, gameID model.GameID) error
}
