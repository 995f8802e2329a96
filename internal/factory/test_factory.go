package factory

import (
	"time"

	"github.com/mcoot/tilegame-go/internal/dependencies/mocks"
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/storage/memory"
	"github.com/mcoot/tilegame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the default game rules
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(model.DefaultGameConfig())
}

// NewTestAppWithConfig is NewTestApp with a chosen default game config
func NewTestAppWithConfig(cfg model.GameConfig) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, cfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// SetHand replaces a player's hand, keeping the tiles out of the stock bag
func (t *TestApp) SetHand(game *model.Game, player model.PlayerID, hand ...model.Tile) {
	game.Hands[player] = hand
}
