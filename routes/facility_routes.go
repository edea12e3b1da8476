package routes

import (
	"facilitydocs/controllers"
	"facilitydocs/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFacilityRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	facilityController := controllers.NewFacilityController(container.FacilityService)

	facilities := rg.Group("/facilities")
	facilities.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		facilities.GET("", facilityController.ListFacilities)
		facilities.GET("/:facilityId", facilityController.GetFacility)

		facilities.POST("", middleware.RequireEditor(), facilityController.CreateFacility)
	}
}
