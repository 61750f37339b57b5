package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gou177/vezdecod-API-50/internal/api/apierr"
	"github.com/gou177/vezdecod-API-50/internal/api/request"
	"github.com/gou177/vezdecod-API-50/internal/api/response"
	"github.com/gou177/vezdecod-API-50/internal/model"
	"github.com/gou177/vezdecod-API-50/internal/services/game"
)

// defaultLeaderboardLimit caps leaderboard responses when no limit is given
const defaultLeaderboardLimit = 10

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller) *GameHandler {
	return &GameHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	snap, err := h.controller.CreateSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromSnapshot(snap))
}

// Get handles GET /api/v1/games/{token}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	snap, err := h.controller.GetSession(r.Context(), token)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(snap))
}

// Reveal handles POST /api/v1/games/{token}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	snap, err := h.controller.Reveal(r.Context(), token, pos)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(snap))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	results, err := h.controller.Leaderboard(r.Context(), limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(results))
}
