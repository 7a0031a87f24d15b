package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wayfarer-app/api-go/controllers"
)

func SetupAssistantRoutes(protected *gin.RouterGroup, assistantController *controllers.AssistantController) {
	assistant := protected.Group("/assistant")
	{
		assistant.POST("/chat", assistantController.Chat)
	}
}
