package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
)

const maxPlayerNameLen = 32

// ListLeaderboard returns the top players by wins (desc), limited to top 10 by default.
func (h *ArenaHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	users, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchLeaderboard)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(users)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchLeaderboard)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayerStats returns the authenticated player's profile.
func (h *ArenaHandler) GetPlayerStats(c *gin.Context) {
	u, err := h.repo.GetUserByWallet(walletFromContext(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchStats)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(u)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchStats)
		return
	}
	c.JSON(http.StatusOK, out)
}

// UpdatePlayerProfile updates the authenticated player's display name.
func (h *ArenaHandler) UpdatePlayerProfile(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		abortWithError(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}
	if len(name) > maxPlayerNameLen {
		abortWithError(c, http.StatusBadRequest, constants.ErrPlayerNameExceeds)
		return
	}
	wallet := walletFromContext(c)
	if err := h.repo.UpsertUser(wallet, name); err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedUpdateStats)
		return
	}
	// Reissue the session so later battles record the new name.
	token, err := createSessionToken(wallet, name, sessionTTL)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedCreateSession)
		return
	}
	setSessionCookie(c, token, sessionTTL)
	c.Set(constants.ContextKeyPlayer, name)
	h.GetPlayerStats(c)
}
