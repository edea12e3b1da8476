package controllers

import (
	"facilitydocs/models"
	"facilitydocs/services"
	"facilitydocs/utils"

	"github.com/gin-gonic/gin"
)

type FolderController struct {
	folderService   *services.FolderService
	facilityService *services.FacilityService
}

func NewFolderController(folderService *services.FolderService, facilityService *services.FacilityService) *FolderController {
	return &FolderController{
		folderService:   folderService,
		facilityService: facilityService,
	}
}

// CreateFolder handles POST /facilities/:facilityId/documents/folders
func (fc *FolderController) CreateFolder(c *gin.Context) {
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

	var req struct {
		Name     string  `json:"name" binding:"required,min=1,max=255"`
		ParentID *string `json:"parent_id,omitempty"`
		Category *string `json:"category,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid request data", err.Error())
		return
	}

	parentID, err := optionalObjectID(req.ParentID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid parent folder ID format", err.Error())
		return
	}

	var category *models.Category
	if req.Category != nil {
		parsed, err := models.ParseCategory(*req.Category)
		if err != nil {
			utils.ValidationErrorResponse(c, "Unknown category", err.Error())
			return
		}
		category = &parsed
	}

	folder, err := fc.folderService.CreateFolder(c.Request.Context(), facilityID, parentID, req.Name, category, actor)
	if err != nil {
		handleServiceError(c, err, "Failed to create folder")
		return
	}

	utils.CreatedResponse(c, "Folder created successfully", folder)
}

// RenameFolder handles PUT /facilities/:facilityId/documents/folders/:folderId
func (fc *FolderController) RenameFolder(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	folderID, ok := objectIDParam(c, "folderId")
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

	folder, err := fc.folderService.RenameFolder(c.Request.Context(), facilityID, folderID, req.Name, actor)
	if err != nil {
		handleServiceError(c, err, "Failed to rename folder")
		return
	}

	utils.SuccessResponse(c, "Folder renamed successfully", folder)
}

// DeleteFolder handles DELETE /facilities/:facilityId/documents/folders/:folderId
func (fc *FolderController) DeleteFolder(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	folderID, ok := objectIDParam(c, "folderId")
	if !ok {
		return
	}

	if err := fc.folderService.DeleteFolder(c.Request.Context(), facilityID, folderID, actor); err != nil {
		handleServiceError(c, err, "Failed to delete folder")
		return
	}

	utils.SuccessResponse(c, "Folder deleted successfully", nil)
}
