package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/engine"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/storage"
)

// fighterView is a roster fighter with the stats it would enter a battle
// with.
type fighterView struct {
	game.Fighter
	Rarity      game.Rarity      `json:"rarity"`
	BattleReady game.BattleStats `json:"battle_ready_stats"`
}

func (h *ArenaHandler) view(f *game.Fighter) fighterView {
	return fighterView{Fighter: *f, Rarity: f.Rarity(), BattleReady: engine.FighterBattleReady(f, h.battle)}
}

// ListFighters returns the roster. ?owner=<wallet> filters by owner.
func (h *ArenaHandler) ListFighters(c *gin.Context) {
	fighters, err := h.repo.GetFighters()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchFighters)
		return
	}
	owner := normalizeWallet(c.Query("owner"))
	out := make([]fighterView, 0, len(fighters))
	for i := range fighters {
		if owner != "" && normalizeWallet(fighters[i].Owner) != owner {
			continue
		}
		out = append(out, h.view(&fighters[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ArenaHandler) GetFighter(c *gin.Context) {
	f, err := h.repo.GetFighterByID(c.Param("fighterID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, constants.ErrFighterNotFound)
			return
		}
		abortWithError(c, http.StatusInternalServerError, constants.ErrFailedFetchFighters)
		return
	}
	c.JSON(http.StatusOK, h.view(f))
}
