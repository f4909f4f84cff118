package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
)

const (
	sessionTTL   = 24 * time.Hour
	maxWalletLen = 128
)

type sessionRequest struct {
	WalletAddress string `json:"wallet_address"`
	PlayerName    string `json:"player_name"`
}

// normalizeWallet lower-cases an address so checksummed and plain forms
// map to the same player.
func normalizeWallet(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CreateSession issues a session cookie for a connected wallet. The wallet
// layer has already verified ownership of the address.
func (h *ArenaHandler) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}
	wallet := normalizeWallet(req.WalletAddress)
	if wallet == "" || len(wallet) > maxWalletLen {
		abortWithError(c, http.StatusBadRequest, constants.ErrWalletRequired)
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if len(name) > maxPlayerNameLen {
		abortWithError(c, http.StatusBadRequest, constants.ErrPlayerNameExceeds)
		return
	}

	if name == "" {
		if u, err := h.repo.GetUserByWallet(wallet); err == nil {
			name = u.PlayerName
		}
	} else if err := h.repo.UpsertUser(wallet, name); err != nil {
		logging.Error("failed to upsert player on session", err, logging.Fields{constants.LogFieldWallet: wallet})
	}

	token, err := createSessionToken(wallet, name, sessionTTL)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedCreateSession)
		return
	}
	setSessionCookie(c, token, sessionTTL)
	c.JSON(http.StatusOK, gin.H{"wallet_address": wallet, "player_name": name})
}

// DeleteSession clears the session cookie.
func (h *ArenaHandler) DeleteSession(c *gin.Context) {
	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}
