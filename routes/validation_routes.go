package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wayfarer-app/api-go/controllers"
)

func SetupValidationRoutes(protected *gin.RouterGroup, validationController *controllers.ValidationController) {
	validation := protected.Group("/validation")
	{
		validation.GET("/username/:username", validationController.ValidateUsername)
		validation.GET("/email/:email", validationController.ValidateEmail)
	}
}
