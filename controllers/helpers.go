package controllers

import (
	"errors"
	"fmt"

	"facilitydocs/services"
	"facilitydocs/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// actorID pulls the authenticated user out of the gin context.
func actorID(c *gin.Context) (primitive.ObjectID, error) {
	userID, exists := c.Get("userId")
	if !exists {
		return primitive.NilObjectID, fmt.Errorf("user not authenticated")
	}

	id, ok := userID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("invalid user ID format")
	}
	return id, nil
}

func facilityIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("facilityId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid facility ID format", nil)
		return primitive.NilObjectID, false
	}
	return id, true
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name+" format", nil)
		return primitive.NilObjectID, false
	}
	return id, true
}

// optionalObjectID parses a nullable ID from a request field; empty means
// absent (the category root).
func optionalObjectID(raw *string) (*primitive.ObjectID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid ID format: %q", *raw)
	}
	return &id, nil
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
func handleServiceError(c *gin.Context, err error, defaultMessage string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.ValidationErrorResponse(c, "Validation failed", err.Error())
	case errors.Is(err, services.ErrDuplicateName):
		utils.ConflictResponse(c, "A sibling with that name already exists", err.Error())
	case errors.Is(err, services.ErrFolderNotEmpty):
		utils.ConflictResponse(c, "Folder is not empty", err.Error())
	case errors.Is(err, services.ErrCategoryMismatch):
		utils.ValidationErrorResponse(c, "Category mismatch", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "Not found")
	case errors.Is(err, services.ErrStorage):
		utils.BadGatewayResponse(c, "Storage backend failure", err.Error())
	default:
		utils.InternalServerErrorResponse(c, defaultMessage, err.Error())
	}
}
