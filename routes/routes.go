package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wayfarer-app/api-go/controllers"
	"github.com/wayfarer-app/api-go/llm"
	"github.com/wayfarer-app/api-go/middleware"
	"github.com/wayfarer-app/api-go/places"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, placeService *places.Service, llmClient *llm.Client, logger zerolog.Logger) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	searchController := controllers.NewSearchController(placeService)
	assistantController := controllers.NewAssistantController(llmClient, placeService, logger)
	curationController := controllers.NewCurationController(db)
	uploadController := controllers.NewUploadController(db)
	validationController := controllers.NewValidationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		// User routes
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		// Setup other routes within the protected group
		SetupPlaceRoutes(protected, searchController)
		SetupAssistantRoutes(protected, assistantController)
		SetupCurationRoutes(protected, curationController)
		SetupUploadRoutes(protected, uploadController)
		SetupValidationRoutes(protected, validationController)
	}
}
