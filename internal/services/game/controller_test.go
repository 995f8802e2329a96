package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tilegame-go/internal/dependencies/mocks"
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/board"
	"github.com/mcoot/tilegame-go/internal/services/scoring"
	"github.com/mcoot/tilegame-go/internal/storage/memory"
	"github.com/mcoot/tilegame-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	boardService *board.Service
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.boardService = board.New(s.storage, scoring.New(), testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.boardService, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func tile(id int, values ...int) model.Tile {
	return model.Tile{ID: model.TileID(id), Combo: model.MustCombo(values...)}
}

// newGame creates a two player game and replaces player-1's hand
func (s *ControllerSuite) newGame(hand ...model.Tile) *model.Game {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"player-1", "player-2"}, model.DefaultGameConfig())
	s.Require().NoError(err)

	game.Hands["player-1"] = hand
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	s.random.QueueString("GAME12345678")
	players := []model.PlayerID{"player-1", "player-2"}

	game, err := s.controller.CreateGame(s.ctx, players, model.DefaultGameConfig())
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.GameStatePlaying, game.State)
	s.Equal(players, game.Players)
	s.Equal(model.PlayerID("player-1"), game.CurrentPlayer())
	s.Len(game.Hand("player-1"), 6)
	s.Len(game.Hand("player-2"), 6)
	s.Len(game.Stock, 108-12)
	s.Equal(model.TileID(108), game.LastTileID)
	s.Equal(map[model.PlayerID]int{"player-1": 0, "player-2": 0}, game.Scores)
}

func (s *ControllerSuite) TestCreateGameDealsDistinctTiles() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"player-1", "player-2"}, model.DefaultGameConfig())
	s.Require().NoError(err)

	seen := make(map[model.TileID]bool)
	all := append(append(append([]model.Tile{}, game.Stock...), game.Hand("player-1")...), game.Hand("player-2")...)
	for _, t := range all {
		s.False(seen[t.ID], "tile %d dealt twice", t.ID)
		seen[t.ID] = true
	}
	s.Len(seen, 108)
}

func (s *ControllerSuite) TestCreateGameCreatesEmptyBoard() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"player-1"}, model.DefaultGameConfig())
	s.Require().NoError(err)

	boardObj, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(boardObj.HasTiles())
	s.Equal(model.DefaultTopology(), boardObj.Topology())
}

func (s *ControllerSuite) TestCreateGameFailsWithNoPlayers() {
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{}, model.DefaultGameConfig())
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestCreateGameFailsWithTooManyPlayers() {
	players := []model.PlayerID{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}
	_, err := s.controller.CreateGame(s.ctx, players, model.DefaultGameConfig())
	s.ErrorIs(err, model.ErrTooManyPlayers)
}

func (s *ControllerSuite) TestCreateGameFailsWithDuplicatePlayer() {
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"p1", "p1"}, model.DefaultGameConfig())
	s.ErrorIs(err, model.ErrDuplicatePlayer)
}

func (s *ControllerSuite) TestCreateGameFailsWithInvalidConfig() {
	cfg := model.DefaultGameConfig()
	cfg.HandSize = 0
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"p1"}, cfg)
	s.ErrorIs(err, model.ErrInvalidGameConfig)

	cfg = model.DefaultGameConfig()
	cfg.Rules.Grid.Height = 3
	_, err = s.controller.CreateGame(s.ctx, []model.PlayerID{"p1"}, cfg)
	s.ErrorIs(err, model.ErrInvalidTopology)
}

func (s *ControllerSuite) TestListGames() {
	s.random.QueueString("GAME1", "GAME2")
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"p1"}, model.DefaultGameConfig())
	s.Require().NoError(err)
	_, err = s.controller.CreateGame(s.ctx, []model.PlayerID{"p1"}, model.DefaultGameConfig())
	s.Require().NoError(err)

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameID{"GAME1", "GAME2"}, ids)
}

func (s *ControllerSuite) TestDeleteGameRemovesGameAndBoard() {
	game := s.newGame(tile(1001, 0, 1))

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID))

	_, err := s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
	_, err = s.controller.GetBoard(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrBoardNotFound)

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *ControllerSuite) TestDeleteGameFailsForUnknownGame() {
	err := s.controller.DeleteGame(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// PlayMove tests

func (s *ControllerSuite) TestPlayMoveScoresAndRefills() {
	game := s.newGame(tile(1001, 0, 1), tile(1002, 0, 2))
	stockBefore := len(game.Stock)

	result, err := s.controller.PlayMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 1001, Cell: model.NewCell(0, 0)},
		{TileID: 1002, Cell: model.NewCell(0, 1)},
	})
	s.Require().NoError(err)

	s.Equal(2, result.Score.Total)
	s.Len(result.Drawn, 2)
	s.Equal(2, result.Game.Scores["player-1"])
	s.Equal(result.Drawn, result.Game.Hand("player-1"))
	s.Len(result.Game.Stock, stockBefore-2)
	s.Equal(model.PlayerID("player-2"), result.Game.CurrentPlayer())
	s.Equal(1, result.Game.CurrentTurn)

	boardObj, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, boardObj.Count())
	placed, ok := boardObj.Get(model.NewCell(0, 1))
	s.True(ok)
	s.Equal(model.TileID(1002), placed.ID)
}

// failingGameSaves is memory storage whose game writes fail once armed
type failingGameSaves struct {
	*memory.Storage
	fail bool
}

func (f *failingGameSaves) SaveGame(ctx context.Context, game *model.Game) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	return f.Storage.SaveGame(ctx, game)
}

func (s *ControllerSuite) TestPlayMoveRestoresBoardWhenGameSaveFails() {
	game := s.newGame(tile(1001, 0, 1), tile(1002, 0, 2))
	store := &failingGameSaves{Storage: s.storage, fail: true}
	controller := NewController(store, s.boardService, s.clock, s.random, testutil.NopLogger())

	_, err := controller.PlayMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 1001, Cell: model.NewCell(0, 0)},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "storage unavailable")

	boardObj, err := s.storage.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Zero(boardObj.Count())

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(stored.Hand("player-1"), 2)
	s.Zero(stored.Scores["player-1"])
}

func (s *ControllerSuite) TestPlayMoveRejectionLeavesGameUnchanged() {
	game := s.newGame(tile(1001, 0, 1))

	_, err := s.controller.PlayMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 1001, Cell: model.NewCell(1, 1)},
	})
	s.ErrorIs(err, model.ErrStart)
	s.True(model.IsMoveRejection(err))

	updated, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), updated.CurrentPlayer())
	s.Len(updated.Hand("player-1"), 1)

	boardObj, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(boardObj.HasTiles())
}

func (s *ControllerSuite) TestPlayMoveFailsIfNotPlayersTurn() {
	game := s.newGame(tile(1001, 0, 1))
	hand := game.Hand("player-2")

	_, err := s.controller.PlayMove(s.ctx, game.ID, "player-2", []Play{
		{TileID: hand[0].ID, Cell: model.StartCell},
	})
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestPlayMoveFailsForUnknownPlayer() {
	game := s.newGame(tile(1001, 0, 1))

	_, err := s.controller.PlayMove(s.ctx, game.ID, "stranger", []Play{
		{TileID: 1001, Cell: model.StartCell},
	})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestPlayMoveFailsForTileNotInHand() {
	game := s.newGame(tile(1001, 0, 1))

	_, err := s.controller.PlayMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 9999, Cell: model.StartCell},
	})
	s.ErrorIs(err, model.ErrTileNotInHand)
}

func (s *ControllerSuite) TestPlayMoveFailsForUnknownGame() {
	_, err := s.controller.PlayMove(s.ctx, "nonexistent", "player-1", []Play{
		{TileID: 1, Cell: model.StartCell},
	})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestPlayMoveWithNoPlaysIsAPass() {
	game := s.newGame(tile(1001, 0, 1))

	result, err := s.controller.PlayMove(s.ctx, game.ID, "player-1", nil)
	s.Require().NoError(err)
	s.Nil(result.Score)
	s.Equal(1, result.Game.ConsecutivePasses)
}

func (s *ControllerSuite) TestGameCompletesWhenHandEmptiesWithEmptyStock() {
	game := s.newGame(tile(1001, 0, 1))
	game.Stock = nil
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	result, err := s.controller.PlayMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 1001, Cell: model.StartCell},
	})
	s.Require().NoError(err)
	s.Equal(0, result.Score.Total)
	s.Empty(result.Drawn)
	s.True(result.Game.IsComplete())

	_, err = s.controller.Pass(s.ctx, game.ID, "player-1")
	s.ErrorIs(err, model.ErrGameComplete)
}

// CheckMove tests

func (s *ControllerSuite) TestCheckMove() {
	game := s.newGame(tile(1001, 0, 1), tile(1002, 1, 2))

	err := s.controller.CheckMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 1001, Cell: model.StartCell},
	})
	s.NoError(err)

	err = s.controller.CheckMove(s.ctx, game.ID, "player-1", []Play{
		{TileID: 1001, Cell: model.NewCell(0, 0)},
		{TileID: 1002, Cell: model.NewCell(0, 1)},
	})
	s.ErrorIs(err, model.ErrRowCompat)

	boardObj, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(boardObj.HasTiles())
}

// Swap tests

func (s *ControllerSuite) TestSwapExchangesTiles() {
	game := s.newGame(tile(1001, 0, 1), tile(1002, 1, 2))
	stockBefore := len(game.Stock)

	result, err := s.controller.Swap(s.ctx, game.ID, "player-1", []model.TileID{1001})
	s.Require().NoError(err)

	s.Len(result.Drawn, 1)
	s.Len(result.Game.Hand("player-1"), 2)
	s.Len(result.Game.Stock, stockBefore)
	s.Contains(result.Game.Stock, tile(1001, 0, 1))
	s.NotContains(result.Game.Hand("player-1"), tile(1001, 0, 1))
	s.Equal(model.PlayerID("player-2"), result.Game.CurrentPlayer())
}

func (s *ControllerSuite) TestSwapFailsWhenStockTooSmall() {
	game := s.newGame(tile(1001, 0, 1), tile(1002, 1, 2))
	game.Stock = game.Stock[:1]
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	_, err := s.controller.Swap(s.ctx, game.ID, "player-1", []model.TileID{1001, 1002})
	s.ErrorIs(err, model.ErrStockTooSmall)
}

func (s *ControllerSuite) TestSwapFailsForTileNotInHand() {
	game := s.newGame(tile(1001, 0, 1))

	_, err := s.controller.Swap(s.ctx, game.ID, "player-1", []model.TileID{9999})
	s.ErrorIs(err, model.ErrTileNotInHand)
}

// Pass tests

func (s *ControllerSuite) TestPassEndsGameAfterEveryonePassesTwice() {
	game := s.newGame(tile(1001, 0, 1))
	players := []model.PlayerID{"player-1", "player-2", "player-1"}

	for _, p := range players {
		result, err := s.controller.Pass(s.ctx, game.ID, p)
		s.Require().NoError(err)
		s.False(result.Game.IsComplete())
	}

	result, err := s.controller.Pass(s.ctx, game.ID, "player-2")
	s.Require().NoError(err)
	s.True(result.Game.IsComplete())
}

func (s *ControllerSuite) TestPlayResetsPassCount() {
	game := s.newGame(tile(1001, 0, 1))
	game.Hands["player-2"] = []model.Tile{tile(2001, 0, 2)}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	_, err := s.controller.Pass(s.ctx, game.ID, "player-1")
	s.Require().NoError(err)

	result, err := s.controller.PlayMove(s.ctx, game.ID, "player-2", []Play{
		{TileID: 2001, Cell: model.StartCell},
	})
	s.Require().NoError(err)
	s.Equal(0, result.Game.ConsecutivePasses)
}

func (s *ControllerSuite) TestTurnUpdatesTimestamp() {
	game := s.newGame(tile(1001, 0, 1))
	s.clock.Advance(time.Minute)
	later := s.clock.Now()

	result, err := s.controller.Pass(s.ctx, game.ID, "player-1")
	s.Require().NoError(err)
	s.Equal(later, result.Game.UpdatedAt)
}
