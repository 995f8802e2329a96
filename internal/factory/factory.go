package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/tilegame-go/internal/config"
	"github.com/mcoot/tilegame-go/internal/dependencies/clock"
	"github.com/mcoot/tilegame-go/internal/dependencies/random"
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/board"
	"github.com/mcoot/tilegame-go/internal/services/game"
	"github.com/mcoot/tilegame-go/internal/services/scoring"
	"github.com/mcoot/tilegame-go/internal/storage"
	"github.com/mcoot/tilegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/tilegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	ScoringService *scoring.Service
	BoardService   *board.Service
	GameController *game.Controller

	// Rules used for games created without an explicit config
	DefaultConfig model.GameConfig
	RulesSource   config.Source
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RulesPath is a YAML rules file (optional)
	// If empty, ./configs/rules.yaml or the embedded default is used
	RulesPath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), rules.Config, logger)
	app.RulesSource = rules.Source

	logger.Info("rules loaded",
		slog.String("source", string(rules.Source)),
		slog.String("path", rules.Path),
		slog.String("shape", string(rules.Config.Rules.Grid.Shape)),
		slog.Int("attributes", rules.Config.Rules.Tiles.AttributeCount()),
	)
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	defaults model.GameConfig,
	logger *slog.Logger,
) *App {
	scoringService := scoring.New()
	boardService := board.New(store, scoringService, logger)
	gameController := game.NewController(store, boardService, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		ScoringService: scoringService,
		BoardService:   boardService,
		GameController: gameController,
		DefaultConfig:  defaults,
	}
}
