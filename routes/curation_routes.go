package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wayfarer-app/api-go/controllers"
)

func SetupCurationRoutes(protected *gin.RouterGroup, curationController *controllers.CurationController) {
	curations := protected.Group("/curations")
	{
		curations.POST("", curationController.CreateCuration)
		curations.GET("", curationController.ListCurations)
		curations.GET("/:curationId", curationController.GetCuration)
		curations.PUT("/:curationId", curationController.UpdateCuration)
		curations.DELETE("/:curationId", curationController.DeleteCuration)
		curations.POST("/:curationId/entries", curationController.AddEntry)
		curations.DELETE("/:curationId/entries/:entryId", curationController.RemoveEntry)
	}
}
