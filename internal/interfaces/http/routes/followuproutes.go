package routes

import (
	"github.com/gin-gonic/gin"

	followuphandlers "briefing/internal/interfaces/http/handlers/followup"
)

type FollowUpRouteConfig struct {
	FollowUpHandler *followuphandlers.FollowUpHandler
}

func SetupFollowUpRoutes(api *gin.RouterGroup, config *FollowUpRouteConfig) {
	followups := api.Group("/followups")
	{
		followups.POST("", config.FollowUpHandler.AddFollowUp)
		followups.GET("", config.FollowUpHandler.ListFollowUps)
		followups.POST("/:id/resolve", config.FollowUpHandler.ResolveFollowUp)
	}
}
