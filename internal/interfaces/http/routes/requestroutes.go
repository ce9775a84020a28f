package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "briefing/internal/interfaces/http/handlers/request"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
}

func SetupRequestRoutes(api *gin.RouterGroup, config *RequestRouteConfig) {
	requests := api.Group("/requests")
	{
		// Register specific paths BEFORE parameterized paths to avoid
		// route conflicts

		requests.POST("", config.RequestHandler.CreateRequest)
		requests.GET("", config.RequestHandler.ListRequests)
		requests.GET("/search", config.RequestHandler.SearchRequests)

		requests.POST("/:id/items", config.RequestHandler.LinkItem)
		requests.PATCH("/:id/status", config.RequestHandler.SetStatus)
		requests.POST("/:id/reconcile", config.RequestHandler.Reconcile)
		requests.POST("/:id/zendesk/approve", config.RequestHandler.ApproveZendeskUpdate)

		requests.GET("/:id", config.RequestHandler.GetRequest)
		requests.DELETE("/:id", config.RequestHandler.DeleteRequest)
	}
}
