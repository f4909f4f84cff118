package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/service"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/storage"
)

type startBattleRequest struct {
	FighterID     string `json:"fighter_id"`
	OpponentID    string `json:"opponent_id"`
	EntryFeePaid  bool   `json:"entry_fee_paid"`
	PaymentTxHash string `json:"payment_tx_hash"`
}

// StartBattle runs a battle for the authenticated wallet.
func (h *ArenaHandler) StartBattle(c *gin.Context) {
	var req startBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}
	if req.FighterID == "" {
		abortWithError(c, http.StatusBadRequest, constants.ErrFighterIDRequired)
		return
	}

	b, err := h.arena.StartBattle(c.Request.Context(), service.StartBattleRequest{
		PlayerWallet:  walletFromContext(c),
		PlayerName:    playerFromContext(c),
		FighterID:     req.FighterID,
		OpponentID:    req.OpponentID,
		EntryFeePaid:  req.EntryFeePaid,
		PaymentTxHash: req.PaymentTxHash,
	})
	if err != nil {
		status, msg := statusForError(err)
		if status == http.StatusInternalServerError {
			logging.Error("start battle failed", err, logging.Fields{constants.LogFieldWallet: walletFromContext(c)})
		}
		abortWithError(c, status, msg)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(b)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedEncodeBattle)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// ListBattles returns the caller's newest battles. Optional ?limit=N.
func (h *ArenaHandler) ListBattles(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	battles, err := h.repo.ListBattlesByWallet(walletFromContext(c), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchBattles)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(battles)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedEncodeBattle)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetBattle returns a stored battle by its UUID.
func (h *ArenaHandler) GetBattle(c *gin.Context) {
	id := c.Param("battleID")
	if _, err := uuid.Parse(id); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.ErrInvalidBattleID)
		return
	}
	b, err := h.repo.GetBattleByBattleID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, constants.ErrBattleNotFound)
			return
		}
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchBattles)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(b)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedEncodeBattle)
		return
	}
	c.JSON(http.StatusOK, out)
}
