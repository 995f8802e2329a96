package redis

import (
	"fmt"

	"github.com/mcoot/tilegame-go/internal/model"
)

// Key prefix for all tile game data
const keyPrefix = "tilegame"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// boardKey returns the Redis key for a game's Board
func boardKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, gameID)
}

// gamesIndexKey returns the Redis key for the SET of known game IDs
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
