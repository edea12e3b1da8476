package controllers

import (
	"facilitydocs/models"
	"facilitydocs/services"
	"facilitydocs/utils"

	"github.com/gin-gonic/gin"
)

// DocumentController serves the combined folder/file listing for one level
// of a facility's category tree.
type DocumentController struct {
	folderService     *services.FolderService
	facilityService   *services.FacilityService
	preferenceService *services.PreferenceService
}

func NewDocumentController(folderService *services.FolderService, facilityService *services.FacilityService, preferenceService *services.PreferenceService) *DocumentController {
	return &DocumentController{
		folderService:     folderService,
		facilityService:   facilityService,
		preferenceService: preferenceService,
	}
}

// ListDocuments handles
// GET /facilities/:facilityId/documents?category=&folder_id=&sort_by=&sort_direction=&filter_type=&search=
// Explicit sort/filter parameters win; absent ones fall back to the caller's
// stored preference for this facility, and explicit ones update it.
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}
	if _, err := dc.facilityService.GetFacility(c.Request.Context(), facilityID); err != nil {
		handleServiceError(c, err, "Failed to retrieve facility")
		return
	}

	category, err := models.ParseCategory(c.Query("category"))
	if err != nil {
		utils.ValidationErrorResponse(c, "Unknown category", err.Error())
		return
	}

	folderParam := c.Query("folder_id")
	folderID, err := optionalObjectID(&folderParam)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid folder ID format", err.Error())
		return
	}

	sortBy := c.Query("sort_by")
	sortDirection := c.Query("sort_direction")
	filterType := c.Query("filter_type")
	searchTerm := c.Query("search")

	explicit := sortBy != "" || sortDirection != "" || filterType != ""
	if !explicit {
		pref, err := dc.preferenceService.Get(c.Request.Context(), actor.Hex(), facilityID.Hex())
		if err != nil {
			utils.LogWarning("failed to load listing preference: " + err.Error())
		} else if pref != nil {
			sortBy = pref.SortBy
			sortDirection = pref.SortDirection
			filterType = pref.FilterType
		}
	}

	opts := services.NormalizeSortOptions(sortBy, sortDirection)

	listing, err := dc.folderService.ListContents(c.Request.Context(), facilityID, category, folderID, opts, filterType, searchTerm)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve documents")
		return
	}

	if explicit {
		pref := services.ListingPreference{
			SortBy:        opts.By,
			SortDirection: opts.Direction,
			FilterType:    filterType,
		}
		if err := dc.preferenceService.Set(c.Request.Context(), actor.Hex(), facilityID.Hex(), pref); err != nil {
			utils.LogWarning("failed to store listing preference: " + err.Error())
		}
	}

	utils.SuccessResponse(c, "Documents retrieved successfully", listing)
}
