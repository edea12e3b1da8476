package routes

import (
	"facilitydocs/controllers"
	"facilitydocs/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDocumentRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	documentController := controllers.NewDocumentController(container.FolderService, container.FacilityService, container.PreferenceService)
	folderController := controllers.NewFolderController(container.FolderService, container.FacilityService)
	fileController := controllers.NewFileController(container.FileService, container.FacilityService)

	documents := rg.Group("/facilities/:facilityId/documents")
	documents.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		documents.GET("", documentController.ListDocuments)
		documents.GET("/files/:fileId/download", fileController.DownloadFile)

		edit := documents.Group("")
		edit.Use(middleware.RequireEditor())
		{
			edit.POST("/folders", folderController.CreateFolder)
			edit.PUT("/folders/:folderId", folderController.RenameFolder)
			edit.DELETE("/folders/:folderId", folderController.DeleteFolder)

			edit.POST("/files", fileController.UploadFiles)
			edit.PUT("/files/:fileId", fileController.RenameFile)
			edit.PUT("/files/:fileId/move", fileController.MoveFile)
			edit.DELETE("/files/:fileId", fileController.DeleteFile)
		}
	}
}
