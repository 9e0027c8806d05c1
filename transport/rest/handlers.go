package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/boardnet/internal/entity"
	"github.com/rocketscienceinc/boardnet/internal/repository"
)

const maxMatchLimit = 100

type snapshotSource interface {
	Snapshot() *entity.Snapshot
}

type gameRepo interface {
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
}

type matchRepo interface {
	List(ctx context.Context, limit int) ([]*entity.Match, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	GameHandler(w http.ResponseWriter, _ *http.Request)
	StoredGameHandler(w http.ResponseWriter, r *http.Request)
	MatchesHandler(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger    *slog.Logger
	game      snapshotSource
	gameRepo  gameRepo
	matchRepo matchRepo
}

func NewHandlers(logger *slog.Logger, game snapshotSource, gameRepo gameRepo, matchRepo matchRepo) Handlers {
	return &handlers{
		logger:    logger.With("component", "rest"),
		game:      game,
		gameRepo:  gameRepo,
		matchRepo: matchRepo,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// GameHandler - current state of the hosted game.
func (that *handlers) GameHandler(w http.ResponseWriter, _ *http.Request) {
	snapshot := that.game.Snapshot()
	if snapshot == nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	that.writeJSON(w, snapshot)
}

// StoredGameHandler - snapshot of a game as persisted in redis.
func (that *handlers) StoredGameHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StoredGameHandler")

	snapshot, err := that.gameRepo.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Failed to get game", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, snapshot)
}

// MatchesHandler - finished matches, newest first. ?limit=N caps the result.
func (that *handlers) MatchesHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MatchesHandler")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxMatchLimit)
	}

	matches, err := that.matchRepo.List(r.Context(), limit)
	if err != nil {
		log.Error("failed to list matches", "error", err)
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, matches)
}

func (that *handlers) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
