package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/mcoot/tilegame-go/internal/dependencies/clock"
	"github.com/mcoot/tilegame-go/internal/dependencies/random"
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/board"
	"github.com/mcoot/tilegame-go/internal/services/tiles"
	"github.com/mcoot/tilegame-go/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Play puts the hand tile with the given ID on a cell
type Play struct {
	TileID model.TileID `json:"tile_id"`
	Cell   model.Cell   `json:"cell"`
}

// TurnResult describes what a turn did
type TurnResult struct {
	Game  *model.Game      `json:"game"`
	Score *model.MoveScore `json:"score,omitempty"` // Nil unless tiles were played
	Drawn []model.Tile     `json:"drawn"`
}

// Controller manages the game state machine and turn flow around the board engine
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateGame sets up a new game: an empty board, a shuffled stock bag and a
// dealt hand for every player
func (c *Controller) CreateGame(ctx context.Context, players []model.PlayerID, cfg model.GameConfig) (*model.Game, error) {
	if len(players) < model.MinPlayers {
		return nil, model.ErrInsufficientPlayers
	}
	if len(players) > model.MaxPlayers {
		return nil, model.ErrTooManyPlayers
	}
	if len(lo.Uniq(players)) != len(players) {
		return nil, model.ErrDuplicatePlayer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, gameIDAlphabet))

	factory := tiles.NewFactory(cfg.Rules.Tiles, cfg.BonusPercent, c.random, 0)
	stock := factory.FullSet(cfg.Clones)
	random.Shuffle(c.random, len(stock), func(i, j int) {
		stock[i], stock[j] = stock[j], stock[i]
	})

	game := &model.Game{
		ID:         gameID,
		State:      model.GameStatePlaying,
		Rules:      cfg.Rules,
		Players:    players,
		Hands:      make(map[model.PlayerID][]model.Tile, len(players)),
		Scores:     make(map[model.PlayerID]int, len(players)),
		HandSize:   cfg.HandSize,
		Stock:      stock,
		LastTileID: factory.LastID(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, playerID := range players {
		game.Hands[playerID] = draw(game, cfg.HandSize)
		game.Scores[playerID] = 0
	}

	if _, err := c.boardService.CreateBoard(ctx, gameID, cfg.Rules); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("player_count", len(players)),
		slog.String("shape", string(cfg.Rules.Grid.Shape)),
		slog.Int("stock_size", len(game.Stock)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// GetBoard retrieves a game's board
func (c *Controller) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return c.boardService.GetBoard(ctx, gameID)
}

// ListGames returns the IDs of all stored games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame removes a finished or abandoned game together with its board
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteBoard(ctx, gameID); err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// CheckMove reports whether the player could make the given plays right now
// without changing anything. A nil error means the move is legal; a move
// rejection reason is returned otherwise.
func (c *Controller) CheckMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, plays []Play) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if !game.HasPlayer(playerID) {
		return model.ErrPlayerNotFound
	}

	move, err := playsFromHand(game.Hand(playerID), plays)
	if err != nil {
		return err
	}

	boardObj, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return err
	}
	return c.boardService.ValidateMove(boardObj, move)
}

// PlayMove places tiles from the current player's hand on the board, scores
// them and refills the hand from the stock. No plays at all is a pass.
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, plays []Play) (*TurnResult, error) {
	if len(plays) == 0 {
		return c.Pass(ctx, gameID, playerID)
	}

	game, err := c.loadForTurn(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	move, err := playsFromHand(game.Hand(playerID), plays)
	if err != nil {
		return nil, err
	}

	boardObj, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := c.boardService.ValidateMove(boardObj, move); err != nil {
		return nil, err
	}

	previous := boardObj.Clone()
	score := c.boardService.ApplyAndScoreDetailed(boardObj, move)
	if err := c.boardService.SaveBoard(ctx, gameID, boardObj); err != nil {
		return nil, fmt.Errorf("saving board: %w", err)
	}

	game.Hands[playerID] = lo.Without(game.Hands[playerID], move.Tiles()...)
	game.Scores[playerID] += score.Total
	drawn := draw(game, move.Len())
	game.Hands[playerID] = append(game.Hands[playerID], drawn...)
	game.ConsecutivePasses = 0

	c.logger.Info("tiles played",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("tiles", move.Len()),
		slog.Int("score", score.Total),
	)

	if len(game.Stock) == 0 && len(game.Hands[playerID]) == 0 {
		c.completeGame(game, "hand emptied")
	} else {
		c.advanceTurn(game)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		// The stored hands still hold the played tiles, so the board must not
		if rerr := c.boardService.SaveBoard(ctx, gameID, previous); rerr != nil {
			c.logger.Error("restoring board after failed turn",
				slog.String("game_id", string(gameID)),
				slog.String("error", rerr.Error()),
			)
		}
		return nil, fmt.Errorf("saving game: %w", err)
	}
	return &TurnResult{Game: game, Score: score, Drawn: drawn}, nil
}

// Swap returns tiles from the current player's hand to the stock bag in
// exchange for the same number of new ones. Swapping nothing is a pass.
func (c *Controller) Swap(ctx context.Context, gameID model.GameID, playerID model.PlayerID, tileIDs []model.TileID) (*TurnResult, error) {
	if len(tileIDs) == 0 {
		return c.Pass(ctx, gameID, playerID)
	}

	game, err := c.loadForTurn(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	var move model.Move
	for _, id := range tileIDs {
		tile, ok := findTile(game.Hand(playerID), id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", model.ErrTileNotInHand, id)
		}
		move.AddSwap(tile)
	}

	boardObj, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := c.boardService.ValidateMove(boardObj, move); err != nil {
		return nil, err
	}
	if len(game.Stock) < move.Len() {
		return nil, model.ErrStockTooSmall
	}

	// Draw before returning the swapped tiles so they cannot come straight back
	returned := move.Tiles()
	game.Hands[playerID] = lo.Without(game.Hands[playerID], returned...)
	drawn := draw(game, len(returned))
	game.Hands[playerID] = append(game.Hands[playerID], drawn...)
	game.Stock = append(game.Stock, returned...)
	random.Shuffle(c.random, len(game.Stock), func(i, j int) {
		game.Stock[i], game.Stock[j] = game.Stock[j], game.Stock[i]
	})
	game.ConsecutivePasses = 0

	c.logger.Info("tiles swapped",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("tiles", len(returned)),
	)

	c.advanceTurn(game)
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return &TurnResult{Game: game, Drawn: drawn}, nil
}

// Pass gives up the current player's turn. The game ends once every player
// has passed twice in a row.
func (c *Controller) Pass(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*TurnResult, error) {
	game, err := c.loadForTurn(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	game.ConsecutivePasses++
	if game.ConsecutivePasses >= 2*len(game.Players) {
		c.completeGame(game, "all players passed")
	} else {
		c.advanceTurn(game)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return &TurnResult{Game: game, Drawn: []model.Tile{}}, nil
}

// loadForTurn fetches a game and checks it is the player's turn
func (c *Controller) loadForTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer() != playerID {
		return nil, model.ErrNotPlayerTurn
	}
	return game, nil
}

// advanceTurn passes play to the next player
func (c *Controller) advanceTurn(game *model.Game) {
	game.CurrentTurn++
	game.CurrentIdx = (game.CurrentIdx + 1) % len(game.Players)
	game.UpdatedAt = c.clock.Now()
}

func (c *Controller) completeGame(game *model.Game, reason string) {
	game.State = model.GameStateComplete
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", reason),
		slog.String("winner", string(game.Winner())),
		slog.Int("total_turns", game.CurrentTurn+1),
	)
}

// draw takes up to n tiles from the end of the stock bag
func draw(game *model.Game, n int) []model.Tile {
	n = min(n, len(game.Stock))
	split := len(game.Stock) - n
	drawn := append([]model.Tile{}, game.Stock[split:]...)
	game.Stock = game.Stock[:split]
	return drawn
}

// playsFromHand builds a move from plays, taking each tile from the hand
func playsFromHand(hand []model.Tile, plays []Play) (model.Move, error) {
	var move model.Move
	for _, p := range plays {
		tile, ok := findTile(hand, p.TileID)
		if !ok {
			return model.Move{}, fmt.Errorf("%w: %d", model.ErrTileNotInHand, p.TileID)
		}
		move.AddPlay(tile, p.Cell)
	}
	return move, nil
}

func findTile(hand []model.Tile, id model.TileID) (model.Tile, bool) {
	return lo.Find(hand, func(t model.Tile) bool {
		return t.ID == id
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, players []model.PlayerID, cfg model.GameConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	ListGames(ctx context.Context) ([]model.GameID, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	CheckMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, plays []Play) error
	PlayMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, plays []Play) (*TurnResult, error)
	Swap(ctx context.Context, gameID model.GameID, playerID model.PlayerID, tileIDs []model.TileID) (*TurnResult, error)
	Pass(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*TurnResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
