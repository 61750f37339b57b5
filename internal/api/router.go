package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gou177/vezdecod-API-50/internal/api/handler"
	"github.com/gou177/vezdecod-API-50/internal/middleware"
	"github.com/gou177/vezdecod-API-50/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.RequestID())
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.CORS())

	// Game routes
	// OPTIONS is routed so the CORS middleware can answer preflights
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/games/{token}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{token}/reveal", gameHandler.Reveal).Methods(http.MethodPost, http.MethodOptions)

	// Leaderboard of finished games
	api.HandleFunc("/leaderboard", gameHandler.Leaderboard).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
