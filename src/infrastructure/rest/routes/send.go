package routes

import (
	"slack-delay-sender/src/infrastructure/rest/controllers/send"

	"github.com/gin-gonic/gin"
)

// SendRoutes mounts the relay both at the root and under /api, matching how
// the browser page and a reverse proxy address it.
func SendRoutes(router *gin.RouterGroup, controller send.ISendController) {
	router.POST("/send-message", controller.Message)

	api := router.Group("/api")
	{
		api.POST("/send-message", controller.Message)
	}
}
