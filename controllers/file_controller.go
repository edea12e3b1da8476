package controllers

import (
	"fmt"
	"mime"
	"net/http"

	"facilitydocs/models"
	"facilitydocs/services"
	"facilitydocs/utils"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	fileService     *services.FileService
	facilityService *services.FacilityService
}

func NewFileController(fileService *services.FileService, facilityService *services.FacilityService) *FileController {
	return &FileController{
		fileService:     fileService,
		facilityService: facilityService,
	}
}

// UploadFiles handles POST /facilities/:facilityId/documents/files
// (multipart: files[], folder_id, category)
func (fc *FileController) UploadFiles(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	if _, err := fc.facilityService.GetFacility(c.Request.Context(), facilityID); err != nil {
		handleServiceError(c, err, "Failed to retrieve facility")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", err.Error())
		return
	}

	fileHeaders := form.File["files[]"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["files"]
	}
	if len(fileHeaders) == 0 {
		utils.ValidationErrorResponse(c, "No files provided", nil)
		return
	}

	folderParam := c.PostForm("folder_id")
	folderID, err := optionalObjectID(&folderParam)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid folder ID format", err.Error())
		return
	}

	var category *models.Category
	if raw := c.PostForm("category"); raw != "" {
		parsed, err := models.ParseCategory(raw)
		if err != nil {
			utils.ValidationErrorResponse(c, "Unknown category", err.Error())
			return
		}
		category = &parsed
	}

	files, err := fc.fileService.UploadFiles(c.Request.Context(), facilityID, folderID, category, fileHeaders, actor)
	if err != nil {
		handleServiceError(c, err, "Failed to upload files")
		return
	}

	utils.CreatedResponse(c, fmt.Sprintf("%d file(s) uploaded successfully", len(files)), files)
}

// RenameFile handles PUT /facilities/:facilityId/documents/files/:fileId
func (fc *FileController) RenameFile(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	fileID, ok := objectIDParam(c, "fileId")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,min=1,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid request data", err.Error())
		return
	}

	file, err := fc.fileService.RenameFile(c.Request.Context(), facilityID, fileID, req.Name, actor)
	if err != nil {
		handleServiceError(c, err, "Failed to rename file")
		return
	}

	utils.SuccessResponse(c, "File renamed successfully", file)
}

// MoveFile handles PUT /facilities/:facilityId/documents/files/:fileId/move
func (fc *FileController) MoveFile(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	fileID, ok := objectIDParam(c, "fileId")
	if !ok {
		return
	}

	var req struct {
		FolderID *string `json:"folder_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid request data", err.Error())
		return
	}

	targetFolderID, err := optionalObjectID(req.FolderID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid folder ID format", err.Error())
		return
	}

	file, err := fc.fileService.MoveFile(c.Request.Context(), facilityID, fileID, targetFolderID, actor)
	if err != nil {
		handleServiceError(c, err, "Failed to move file")
		return
	}

	utils.SuccessResponse(c, "File moved successfully", file)
}

// DownloadFile handles GET /facilities/:facilityId/documents/files/:fileId/download
func (fc *FileController) DownloadFile(c *gin.Context) {
	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	fileID, ok := objectIDParam(c, "fileId")
	if !ok {
		return
	}

	file, reader, err := fc.fileService.DownloadFile(c.Request.Context(), facilityID, fileID)
	if err != nil {
		handleServiceError(c, err, "Failed to download file")
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": contentDisposition(file.OriginalName),
	}
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, reader, extraHeaders)
}

// contentDisposition builds the attachment header. Non-ASCII original names
// come out as the RFC 5987 filename* form instead of raw bytes.
func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

// DeleteFile handles DELETE /facilities/:facilityId/documents/files/:fileId
func (fc *FileController) DeleteFile(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	fileID, ok := objectIDParam(c, "fileId")
	if !ok {
		return
	}

	if err := fc.fileService.DeleteFile(c.Request.Context(), facilityID, fileID, actor); err != nil {
		handleServiceError(c, err, "Failed to delete file")
		return
	}

	utils.SuccessResponse(c, "File deleted successfully", nil)
}
