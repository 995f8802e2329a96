package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games  map[model.GameID]*model.Game
	boards map[model.GameID]*model.Board
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:  make(map[model.GameID]*model.Game),
		boards: make(map[model.GameID]*model.Board),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.GameID, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Board operations
//
// Boards are copied on the way in and out so callers working on a board
// never see each other's unsaved changes.

func (s *Storage) SaveBoard(ctx context.Context, gameID model.GameID, board *model.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[gameID] = board.Clone()
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[gameID]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return board.Clone(), nil
}

func (s *Storage) DeleteBoard(ctx context.Context, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, gameID)
	return nil
}
