package routes

import (
	"fmt"

	"facilitydocs/config"
	"facilitydocs/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceContainer holds all services and dependencies.
type ServiceContainer struct {
	DB                *mongo.Database
	JWTSecret         string
	StorageService    services.StorageService
	AuditService      *services.AuditService
	FacilityService   *services.FacilityService
	FolderService     *services.FolderService
	FileService       *services.FileService
	PreferenceService *services.PreferenceService
}

// NewServiceContainer wires every service against the configured backends.
func NewServiceContainer(db *mongo.Database, cfg *config.Config) (*ServiceContainer, error) {
	var storage services.StorageService
	var err error

	switch cfg.StorageBackend {
	case "b2":
		storage, err = services.NewB2StorageService(cfg.B2ApplicationKeyID, cfg.B2ApplicationKey, cfg.B2BucketName)
	default:
		storage, err = services.NewLocalStorageService(cfg.StorageRoot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s storage: %w", cfg.StorageBackend, err)
	}

	auditService := services.NewAuditService(db)
	facilityService := services.NewFacilityService(db)
	folderService := services.NewFolderService(db, auditService)
	fileService := services.NewFileService(db, storage, auditService, cfg.MaxFileSize)
	preferenceService := services.NewPreferenceService(cfg.RedisAddr, cfg.RedisPassword)

	return &ServiceContainer{
		DB:                db,
		JWTSecret:         cfg.JWTSecret,
		StorageService:    storage,
		AuditService:      auditService,
		FacilityService:   facilityService,
		FolderService:     folderService,
		FileService:       fileService,
		PreferenceService: preferenceService,
	}, nil
}

// SetupRoutes registers all route groups against the API group.
func SetupRoutes(api *gin.RouterGroup, container *ServiceContainer) {
	RegisterFacilityRoutes(api, container)
	RegisterDocumentRoutes(api, container)
}
