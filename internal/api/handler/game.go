package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tilegame-go/internal/api/request"
	"github.com/mcoot/tilegame-go/internal/api/response"
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	defaults       model.GameConfig
}

// NewGameHandler creates a new game handler. defaults is used for games
// created without an explicit config.
func NewGameHandler(gameController *game.Controller, defaults model.GameConfig) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		defaults:       defaults,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cfg := h.defaults
	if req.Config != nil {
		cfg = *req.Config
	}

	g, err := h.gameController.CreateGame(r.Context(), req.Players, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]string, len(ids))}
	for i, id := range ids {
		resp.Games[i] = string(id)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Board handles GET /api/v1/games/{id}/board
func (h *GameHandler) Board(w http.ResponseWriter, r *http.Request) {
	b, err := h.gameController.GetBoard(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(b))
}

// Check handles POST /api/v1/games/{id}/check
func (h *GameHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	err := h.gameController.CheckMove(r.Context(), gameID(r), req.PlayerID, req.Plays)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.Check{Legal: true})
	case model.IsMoveRejection(err):
		response.JSON(w, http.StatusOK, response.Check{
			Reason:  model.ReasonCode(err),
			Message: err.Error(),
		})
	default:
		WriteError(w, err)
	}
}

// Play handles POST /api/v1/games/{id}/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.PlayMove(r.Context(), gameID(r), req.PlayerID, req.Plays)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnFromResult(result))
}

// Swap handles POST /api/v1/games/{id}/swap
func (h *GameHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req request.SwapRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.Swap(r.Context(), gameID(r), req.PlayerID, req.TileIDs)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnFromResult(result))
}

// Pass handles POST /api/v1/games/{id}/pass
func (h *GameHandler) Pass(w http.ResponseWriter, r *http.Request) {
	var req request.PassRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.Pass(r.Context(), gameID(r), req.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnFromResult(result))
}
