package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/tilegame-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes. Move rejections use the reason code of the rejection
// instead, e.g. "GAP" or "ROW_COMPAT".
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidConfig       = "INVALID_CONFIG"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeBoardNotFound       = "BOARD_NOT_FOUND"
	CodeGameComplete        = "GAME_COMPLETE"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeTooManyPlayers      = "TOO_MANY_PLAYERS"
	CodeDuplicatePlayer     = "DUPLICATE_PLAYER"
	CodeTileNotInHand       = "TILE_NOT_IN_HAND"
	CodeStockTooSmall       = "STOCK_TOO_SMALL"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// An illegal move is a well-formed request the rules refuse
	if code := model.ReasonCode(err); code != "" {
		return &httpError{http.StatusUnprocessableEntity, APIError{code, err.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrBoardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBoardNotFound, "Board not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player is not in this game"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrTooManyPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeTooManyPlayers, "Too many players for one game"}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicatePlayer, "Player listed more than once"}}
	case errors.Is(err, model.ErrTileNotInHand):
		return &httpError{http.StatusConflict, APIError{CodeTileNotInHand, "Tile is not in your hand"}}
	case errors.Is(err, model.ErrStockTooSmall):
		return &httpError{http.StatusConflict, APIError{CodeStockTooSmall, "Not enough tiles left to swap"}}
	case errors.Is(err, model.ErrInvalidTopology),
		errors.Is(err, model.ErrInvalidTileRules),
		errors.Is(err, model.ErrInvalidGameConfig),
		errors.Is(err, model.ErrInvalidCombo):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
