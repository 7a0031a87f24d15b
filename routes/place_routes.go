package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wayfarer-app/api-go/controllers"
)

func SetupPlaceRoutes(protected *gin.RouterGroup, searchController *controllers.SearchController) {
	places := protected.Group("/places")
	{
		places.POST("/search", searchController.FindPlaces)
	}
}
