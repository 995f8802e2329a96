package board

import (
	"context"
	"log/slog"

	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/scoring"
	"github.com/mcoot/tilegame-go/internal/storage"
)

// Service provides board operations: storage, move validation and applying moves
type Service struct {
	storage storage.Storage
	scoring *scoring.Service
	logger  *slog.Logger
}

// New creates a new BoardService
func New(storage storage.Storage, scoring *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		scoring: scoring,
		logger:  logger,
	}
}

// CreateBoard initializes an empty board for a game
func (s *Service) CreateBoard(ctx context.Context, gameID model.GameID, rules model.Rules) (*model.Board, error) {
	board := model.NewBoard(rules)
	if err := s.storage.SaveBoard(ctx, gameID, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoard retrieves a game's board
func (s *Service) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return s.storage.GetBoard(ctx, gameID)
}

// SaveBoard persists a game's board
func (s *Service) SaveBoard(ctx context.Context, gameID model.GameID, board *model.Board) error {
	return s.storage.SaveBoard(ctx, gameID, board)
}

// ValidateMove checks whether a move is legal on the board. It returns nil
// for a legal move and a move rejection reason otherwise. The board is
// never modified.
func (s *Service) ValidateMove(board *model.Board, move model.Move) error {
	err := validate(board, move)
	if err != nil {
		s.logger.Debug("move rejected",
			slog.String("move", move.String()),
			slog.String("reason", model.ReasonCode(err)),
		)
	}
	return err
}

// ApplyAndScore puts the move's tiles on the board and returns the points
// scored. The move must already have passed ValidateMove.
func (s *Service) ApplyAndScore(board *model.Board, move model.Move) int {
	return s.ApplyAndScoreDetailed(board, move).Total
}

// ApplyAndScoreDetailed is ApplyAndScore returning the per-line breakdown
func (s *Service) ApplyAndScoreDetailed(board *model.Board, move model.Move) *model.MoveScore {
	for _, p := range move.Placements() {
		if p.Swap {
			continue
		}
		board.PlayOnCell(p.Cell, p.Tile)
	}

	result := s.scoring.ScoreMove(board, move)
	s.logger.Debug("move applied",
		slog.String("move", move.String()),
		slog.Int("score", result.Total),
	)
	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(ctx context.Context, gameID model.GameID, rules model.Rules) (*model.Board, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	SaveBoard(ctx context.Context, gameID model.GameID, board *model.Board) error
	ValidateMove(board *model.Board, move model.Move) error
	ApplyAndScore(board *model.Board, move model.Move) int
}

var _ ServiceInterface = (*Service)(nil)
