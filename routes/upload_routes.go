package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wayfarer-app/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		// Curation cover upload URL generation
		upload.POST("/cover-url", uploadController.GetCoverUploadURL)

		// Confirm upload completion
		upload.POST("/confirm", uploadController.ConfirmCoverUpload)

		// Delete uploaded file
		upload.DELETE("/file/:key", uploadController.DeleteFile)
	}
}
