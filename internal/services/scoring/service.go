package scoring

import (
	"github.com/mcoot/tilegame-go/internal/model"
)

// Service scores moves that have already been validated and applied
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScoreMove calculates the points for a move. The board must already hold
// the move's tiles.
func (s *Service) ScoreMove(board *model.Board, move model.Move) *model.MoveScore {
	result := &model.MoveScore{Lines: []model.LineScore{}}
	cells := move.Cells()
	grid := board.Topology()

	for _, dir := range grid.ScoringDirections() {
		// A run is scored once however many of its cells were played. Runs
		// are keyed by cell since a wrapped line can hold more than one.
		scored := make(map[model.Cell]bool)
		for _, cell := range cells {
			if scored[cell] {
				continue
			}
			for _, c := range board.RunCells(cell, dir) {
				scored[c] = true
			}

			line, ok := s.scoreDirection(board, cell, dir)
			if !ok {
				continue
			}
			result.Lines = append(result.Lines, line)
			result.Total += line.Score
		}
	}

	return result
}

// scoreDirection scores the run through cell along dir. ok is false for an
// isolated tile, which forms no run.
func (s *Service) scoreDirection(board *model.Board, cell model.Cell, dir model.Direction) (model.LineScore, bool) {
	run := board.RunCells(cell, dir)
	if len(run) == 1 {
		return model.LineScore{}, false
	}

	first, last := run[0], run[len(run)-1]
	firstTile, _ := board.Get(first)
	lastTile, _ := board.Get(last)

	line := model.LineScore{
		Direction: dir,
		First:     first,
		Last:      last,
		Length:    len(run),
		Attribute: -1,
		Score:     len(run),
	}

	attr, ok := firstTile.Combo.CommonAttribute(lastTile.Combo)
	if !ok {
		return line, true
	}
	line.Attribute = attr

	maxLength := 1 + board.Rules().Tiles.MaxValue(attr)
	if line.Length == maxLength {
		line.Complete = true
		line.Score = 2 * line.Length
	}
	return line, true
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreMove(board *model.Board, move model.Move) *model.MoveScore
}

var _ ServiceInterface = (*Service)(nil)
