package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/engine"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/service"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/storage"
)

// ReplaySettings control how stored battles are streamed back.
type ReplaySettings struct {
	StepDelay time.Duration
	Messages  engine.MessageTable
	Random    engine.RandomSource
}

// ArenaHandler groups all arena HTTP handlers.
type ArenaHandler struct {
	repo   storage.Repository
	arena  *service.Arena
	battle engine.Config
	replay ReplaySettings
}

func NewArenaHandler(repo storage.Repository, arena *service.Arena, battle engine.Config, replay ReplaySettings) *ArenaHandler {
	return &ArenaHandler{repo: repo, arena: arena, battle: battle, replay: replay}
}

// statusForError maps service errors to an HTTP status and a user-facing
// message.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, constants.ErrInvalidRequest
	case errors.Is(err, service.ErrEntryFeeRequired):
		return http.StatusPaymentRequired, constants.ErrEntryFeeRequired
	case errors.Is(err, service.ErrFighterNotFound):
		return http.StatusNotFound, constants.ErrFighterNotFound
	case errors.Is(err, service.ErrOpponentNotFound):
		return http.StatusNotFound, constants.ErrOpponentNotFound
	case errors.Is(err, service.ErrSameFighter), errors.Is(err, engine.ErrDuplicateFighter):
		return http.StatusBadRequest, constants.ErrSameFighter
	case errors.Is(err, service.ErrPaymentAlreadyUsed):
		return http.StatusConflict, constants.ErrPaymentAlreadyUsed
	case errors.Is(err, service.ErrEmptyRoster):
		return http.StatusConflict, constants.ErrNoOpponents
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, constants.ErrBattleNotFound
	}
	var invalid *engine.InvalidStatsError
	if errors.As(err, &invalid) {
		return http.StatusConflict, invalid.Error()
	}
	return http.StatusInternalServerError, constants.ErrFailedStartBattle
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{constants.JSONKeyError: msg})
}

// walletFromContext returns the authenticated wallet set by AuthRequired.
func walletFromContext(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyWallet); ok {
		s, _ := v.(string)
		return s
	}
	return ""
}

func playerFromContext(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyPlayer); ok {
		s, _ := v.(string)
		return s
	}
	return ""
}
