package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
)

// NewRouter wires every arena route onto a gin engine.
func NewRouter(h *ArenaHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteFighters, h.ListFighters)
		apiRoutes.GET(constants.RouteFighterByID, h.GetFighter)
		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.GET(constants.RouteBattleReplay, h.ReplayBattle)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.POST(constants.RouteSession, h.CreateSession)
		apiRoutes.DELETE(constants.RouteSession, h.DeleteSession)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(AuthRequired())

		protected.POST(constants.RouteBattles, h.StartBattle)
		protected.GET(constants.RouteBattles, h.ListBattles)
		// Player profile: GET returns stats, POST updates display name
		protected.GET(constants.RoutePlayerStats, h.GetPlayerStats)
		protected.POST(constants.RoutePlayerStats, h.UpdatePlayerProfile)
	}
	return router
}
