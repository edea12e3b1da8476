package controllers

import (
	"facilitydocs/services"
	"facilitydocs/utils"

	"github.com/gin-gonic/gin"
)

type FacilityController struct {
	facilityService *services.FacilityService
}

func NewFacilityController(facilityService *services.FacilityService) *FacilityController {
	return &FacilityController{facilityService: facilityService}
}

func (fc *FacilityController) CreateFacility(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,min=1,max=255"`
		Address string `json:"address,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Invalid request data", err.Error())
		return
	}

	facility, err := fc.facilityService.CreateFacility(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		handleServiceError(c, err, "Failed to create facility")
		return
	}

	utils.CreatedResponse(c, "Facility created successfully", facility)
}

func (fc *FacilityController) ListFacilities(c *gin.Context) {
	facilities, err := fc.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve facilities")
		return
	}

	utils.SuccessResponse(c, "Facilities retrieved successfully", facilities)
}

func (fc *FacilityController) GetFacility(c *gin.Context) {
	facilityID, ok := facilityIDParam(c)
	if !ok {
		return
	}

	facility, err := fc.facilityService.GetFacility(c.Request.Context(), facilityID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve facility")
		return
	}

	utils.SuccessResponse(c, "Facility retrieved successfully", facility)
}
