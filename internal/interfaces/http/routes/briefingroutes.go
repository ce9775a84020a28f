package routes

import (
	"github.com/gin-gonic/gin"

	briefinghandlers "briefing/internal/interfaces/http/handlers/briefing"
)

type BriefingRouteConfig struct {
	BriefingHandler *briefinghandlers.BriefingHandler
	PrefsHandler    *briefinghandlers.PrefsHandler
}

func SetupBriefingRoutes(api *gin.RouterGroup, config *BriefingRouteConfig) {
	api.GET("/summary", config.BriefingHandler.GetSummary)

	state := api.Group("/state")
	{
		// Register action paths BEFORE the bare parameterized path to
		// avoid route conflicts
		state.POST("/:channel/mark", config.BriefingHandler.MarkBriefed)
		state.POST("/:channel/check", config.BriefingHandler.CheckNew)
		state.DELETE("/:channel/reset", config.BriefingHandler.ResetChannel)
		state.GET("/:channel", config.BriefingHandler.GetChannelState)
	}

	prefs := api.Group("/prefs")
	{
		prefs.GET("", config.PrefsHandler.GetPrefs)
		prefs.POST("", config.PrefsHandler.SetPref)
		prefs.DELETE("/:key", config.PrefsHandler.DeletePref)
	}

	api.GET("/memory", config.PrefsHandler.GetMemory)
	api.PUT("/memory", config.PrefsHandler.SetMemory)
}
