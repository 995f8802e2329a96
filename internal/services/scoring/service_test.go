package scoring

import (
	"testing"

	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	nextID  model.TileID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.nextID = 0
}

func (s *ServiceSuite) tile(values ...int) model.Tile {
	s.nextID++
	return model.Tile{ID: s.nextID, Combo: model.MustCombo(values...)}
}

// apply plays the move's tiles on the board, as the board service does before scoring
func apply(b *model.Board, m model.Move) {
	for _, p := range m.Placements() {
		b.PlayOnCell(p.Cell, p.Tile)
	}
}

func (s *ServiceSuite) TestSingleTileOnEmptyBoardScoresZero() {
	b := model.NewBoard(model.DefaultRules())
	var m model.Move
	m.AddPlay(s.tile(2, 3), model.StartCell)
	apply(b, m)

	result := s.service.ScoreMove(b, m)
	s.Equal(0, result.Total)
	s.Empty(result.Lines)
}

func (s *ServiceSuite) TestRunScoresItsLength() {
	b := model.NewBoard(model.DefaultRules())
	var m model.Move
	for col := 0; col < 3; col++ {
		m.AddPlay(s.tile(col, 4), model.NewCell(0, col))
	}
	apply(b, m)

	result := s.service.ScoreMove(b, m)
	s.Equal(3, result.Total, "a line is scored once however many of its tiles were played")
	s.Require().Len(result.Lines, 1)

	line := result.Lines[0]
	s.Equal(model.East, line.Direction)
	s.Equal(model.NewCell(0, 0), line.First)
	s.Equal(model.NewCell(0, 2), line.Last)
	s.Equal(1, line.Attribute)
	s.False(line.Complete)
}

func (s *ServiceSuite) TestCompleteRunScoresDouble() {
	b := model.NewBoard(model.DefaultRules())
	var m model.Move
	for v := 0; v <= 5; v++ {
		m.AddPlay(s.tile(v, 3), model.NewCell(0, v))
	}
	apply(b, m)

	result := s.service.ScoreMove(b, m)
	s.Equal(12, result.Total)
	s.Require().Len(result.Lines, 1)
	s.True(result.Lines[0].Complete)
}

func (s *ServiceSuite) TestCompleteRunUsesSharedAttributeRange() {
	// Three values for the shared attribute, so three tiles complete the run
	rules, err := model.NewRules(model.DefaultTopology(), model.TileRules{MaxValues: []int{5, 2}})
	s.Require().NoError(err)
	b := model.NewBoard(rules)

	var m model.Move
	for v := 0; v <= 2; v++ {
		m.AddPlay(s.tile(v, 1), model.NewCell(v, 0))
	}
	apply(b, m)

	result := s.service.ScoreMove(b, m)
	s.Equal(6, result.Total)
	s.Equal(model.North, result.Lines[0].Direction)
}

func (s *ServiceSuite) TestPlayScoresEveryLineItTouches() {
	b := model.NewBoard(model.DefaultRules())
	b.PlayOnCell(model.NewCell(0, 0), s.tile(0, 0))
	b.PlayOnCell(model.NewCell(0, 1), s.tile(0, 1))
	b.PlayOnCell(model.NewCell(1, 1), s.tile(1, 1))

	var m model.Move
	m.AddPlay(s.tile(1, 0), model.NewCell(1, 0))
	apply(b, m)

	result := s.service.ScoreMove(b, m)
	s.Equal(4, result.Total)
	s.Len(result.Lines, 2)
}

func (s *ServiceSuite) TestExtendingARunScoresTheWholeRun() {
	b := model.NewBoard(model.DefaultRules())
	b.PlayOnCell(model.NewCell(0, 0), s.tile(0, 0))
	b.PlayOnCell(model.NewCell(0, 1), s.tile(1, 0))

	var m model.Move
	m.AddPlay(s.tile(2, 0), model.NewCell(0, 2))
	apply(b, m)

	s.Equal(3, s.service.ScoreMove(b, m).Total)
}

func (s *ServiceSuite) TestScoringIsDeterministic() {
	build := func() (*model.Board, model.Move) {
		b := model.NewBoard(model.DefaultRules())
		b.PlayOnCell(model.NewCell(0, 0), model.Tile{ID: 1, Combo: model.MustCombo(0, 0)})
		var m model.Move
		m.AddPlay(model.Tile{ID: 2, Combo: model.MustCombo(0, 1)}, model.NewCell(0, 1))
		m.AddPlay(model.Tile{ID: 3, Combo: model.MustCombo(0, 2)}, model.NewCell(0, 2))
		apply(b, m)
		return b, m
	}

	b1, m1 := build()
	b2, m2 := build()
	s.Equal(s.service.ScoreMove(b1, m1), s.service.ScoreMove(b2, m2))
}

func (s *ServiceSuite) TestHexScoresAlongItsThreeAxes() {
	rules, err := model.NewRules(model.GridTopology{Shape: model.ShapeHex}, model.DefaultTileRules())
	s.Require().NoError(err)
	b := model.NewBoard(rules)
	b.PlayOnCell(model.NewCell(0, 0), s.tile(0, 0))
	b.PlayOnCell(model.NewCell(2, 0), s.tile(0, 1))

	var m model.Move
	m.AddPlay(s.tile(0, 2), model.NewCell(1, 1))
	apply(b, m)

	// (1,1) sits north-east of (0,0) and south-east of (2,0)
	result := s.service.ScoreMove(b, m)
	s.Equal(4, result.Total)
	s.Len(result.Lines, 2)
}
