package model

import "errors"

// Move rejection reasons. These are expected outcomes of checking a player's
// move, never failures of the engine itself.
var (
	ErrRepeatTile   = errors.New("the same tile appears more than once in the move")
	ErrRepeatCell   = errors.New("two tiles are played on the same cell")
	ErrSwap         = errors.New("tiles cannot be swapped and played in the same move")
	ErrInvalidCell  = errors.New("the cell is not on the board")
	ErrEmpty        = errors.New("the cell is already occupied")
	ErrRowColumn    = errors.New("the tiles must all lie on one line")
	ErrStart        = errors.New("the first play must cover the start cell")
	ErrNeighbor     = errors.New("the play must connect to tiles already on the board")
	ErrGap          = errors.New("the line of played tiles has a gap")
	ErrColumnCompat = errors.New("the tiles in a column are not compatible")
	ErrRowCompat    = errors.New("the tiles in a row are not compatible")
	ErrDiagCompat   = errors.New("the tiles on a diagonal are not compatible")
)

// Configuration errors
var (
	ErrInvalidTopology   = errors.New("invalid grid topology")
	ErrInvalidTileRules  = errors.New("invalid tile rules")
	ErrInvalidCombo      = errors.New("invalid combo")
	ErrInvalidGameConfig = errors.New("invalid game config")
)

// Game errors
var (
	ErrGameNotFound        = errors.New("game not found")
	ErrBoardNotFound       = errors.New("board not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotPlayerTurn       = errors.New("not this player's turn")
	ErrGameComplete        = errors.New("game is already complete")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrTooManyPlayers      = errors.New("too many players for one game")
	ErrDuplicatePlayer     = errors.New("player listed more than once")
	ErrTileNotInHand       = errors.New("tile is not in the player's hand")
	ErrStockTooSmall       = errors.New("not enough tiles in the stock bag to swap")
)

// moveRejections maps each rejection reason to a stable code
var moveRejections = map[error]string{
	ErrRepeatTile:   "REPEAT_TILE",
	ErrRepeatCell:   "REPEAT_CELL",
	ErrSwap:         "SWAP",
	ErrInvalidCell:  "INVALID_CELL",
	ErrEmpty:        "EMPTY",
	ErrRowColumn:    "ROW_COLUMN",
	ErrStart:        "START",
	ErrNeighbor:     "NEIGHBOR",
	ErrGap:          "GAP",
	ErrColumnCompat: "COLUMN_COMPAT",
	ErrRowCompat:    "ROW_COMPAT",
	ErrDiagCompat:   "DIAG_COMPAT",
}

// IsMoveRejection returns true if err is (or wraps) a move rejection reason
func IsMoveRejection(err error) bool {
	return ReasonCode(err) != ""
}

// ReasonCode returns the code of the rejection reason wrapped by err, or ""
func ReasonCode(err error) string {
	if err == nil {
		return ""
	}
	for reason, code := range moveRejections {
		if errors.Is(err, reason) {
			return code
		}
	}
	return ""
}
