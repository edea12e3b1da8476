package services

import (
	"context"
	"fmt"
	"time"

	"facilitydocs/models"
	"facilitydocs/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxFolderDepth bounds the parent-chain walk so a corrupted parent cycle
// cannot hang a request.
const maxFolderDepth = 64

// DocumentListing is the combined view of one folder level: subfolders first,
// then files, plus the path back to the category root. Entries is the same
// content flattened into render order for table-style clients.
type DocumentListing struct {
	Folders     []models.Folder `json:"folders"`
	Files       []models.File   `json:"files"`
	Entries     []ListEntry     `json:"entries"`
	Breadcrumbs []Breadcrumb    `json:"breadcrumbs"`
	SortOptions []SortOptions   `json:"sort_options"`
}

type FolderService struct {
	folderCollection *mongo.Collection
	fileCollection   *mongo.Collection
	auditService     *AuditService
}

func NewFolderService(db *mongo.Database, auditService *AuditService) *FolderService {
	return &FolderService{
		folderCollection: db.Collection("folders"),
		fileCollection:   db.Collection("files"),
		auditService:     auditService,
	}
}

// CreateFolder creates a folder under parentID (nil for the category root).
// A child always inherits its parent's category; a requested category that
// disagrees with the parent is rejected rather than silently overridden.
func (s *FolderService) CreateFolder(ctx context.Context, facilityID primitive.ObjectID, parentID *primitive.ObjectID, name string, requested *models.Category, actorID primitive.ObjectID) (*models.Folder, error) {
	if err := utils.ValidateFolderName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	category := models.CategoryMain
	if requested != nil {
		if !requested.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *requested)
		}
		category = *requested
	}

	if parentID != nil {
		var parent models.Folder
		err := s.folderCollection.FindOne(ctx, bson.M{
			"_id":         *parentID,
			"facility_id": facilityID,
		}).Decode(&parent)

		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: parent folder", ErrNotFound)
		} else if err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}

		if requested != nil && *requested != parent.Category {
			return nil, fmt.Errorf("%w: parent folder is in category %q", ErrCategoryMismatch, parent.Category)
		}
		category = parent.Category
	}

	if err := s.checkSiblingName(ctx, facilityID, category, parentID, name, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	folder := models.Folder{
		ID:         primitive.NewObjectID(),
		FacilityID: facilityID,
		Category:   category,
		ParentID:   parentID,
		Name:       name,
		CreatedBy:  actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.folderCollection.InsertOne(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	s.auditService.Record(ctx, actorID, "folder_created", "folder", folder.ID, facilityID, map[string]any{
		"name":     name,
		"category": category.String(),
	})

	return &folder, nil
}

func (s *FolderService) RenameFolder(ctx context.Context, facilityID, folderID primitive.ObjectID, newName string, actorID primitive.ObjectID) (*models.Folder, error) {
	if err := utils.ValidateFolderName(newName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	folder, err := s.GetFolder(ctx, facilityID, folderID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSiblingName(ctx, facilityID, folder.Category, folder.ParentID, newName, &folderID); err != nil {
		return nil, err
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":       newName,
			"updated_at": now,
		},
	}

	if _, err := s.folderCollection.UpdateOne(ctx, bson.M{"_id": folderID}, update); err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}

	s.auditService.Record(ctx, actorID, "folder_renamed", "folder", folderID, facilityID, map[string]any{
		"from": folder.Name,
		"to":   newName,
	})

	folder.Name = newName
	folder.UpdatedAt = now
	return folder, nil
}

// DeleteFolder hard-deletes an empty folder. A folder with any child folder
// or file is refused.
func (s *FolderService) DeleteFolder(ctx context.Context, facilityID, folderID primitive.ObjectID, actorID primitive.ObjectID) error {
	folder, err := s.GetFolder(ctx, facilityID, folderID)
	if err != nil {
		return err
	}

	childFolders, err := s.folderCollection.CountDocuments(ctx, bson.M{"parent_id": folderID})
	if err != nil {
		return fmt.Errorf("failed to count subfolders: %w", err)
	}
	childFiles, err := s.fileCollection.CountDocuments(ctx, bson.M{"folder_id": folderID})
	if err != nil {
		return fmt.Errorf("failed to count files: %w", err)
	}
	if childFolders > 0 || childFiles > 0 {
		return fmt.Errorf("%w: %d folders, %d files", ErrFolderNotEmpty, childFolders, childFiles)
	}

	result, err := s.folderCollection.DeleteOne(ctx, bson.M{"_id": folderID})
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: folder", ErrNotFound)
	}

	s.auditService.Record(ctx, actorID, "folder_deleted", "folder", folderID, facilityID, map[string]any{
		"name": folder.Name,
	})

	return nil
}

func (s *FolderService) GetFolder(ctx context.Context, facilityID, folderID primitive.ObjectID) (*models.Folder, error) {
	var folder models.Folder
	err := s.folderCollection.FindOne(ctx, bson.M{
		"_id":         folderID,
		"facility_id": facilityID,
	}).Decode(&folder)

	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: folder", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &folder, nil
}

// ListContents returns one folder level of a category tree. folderID nil
// means the category root. Folders always precede files; both slices are
// sorted by opts, filtered by extension (files only) and search term.
func (s *FolderService) ListContents(ctx context.Context, facilityID primitive.ObjectID, category models.Category, folderID *primitive.ObjectID, opts SortOptions, filterType, searchTerm string) (*DocumentListing, error) {
	breadcrumbs := []Breadcrumb{{Name: rootBreadcrumbName}}

	if folderID != nil {
		folder, err := s.GetFolder(ctx, facilityID, *folderID)
		if err != nil {
			return nil, err
		}
		if folder.Category != category {
			return nil, fmt.Errorf("%w: folder is in category %q", ErrCategoryMismatch, folder.Category)
		}
		breadcrumbs, err = s.Breadcrumbs(ctx, facilityID, *folderID)
		if err != nil {
			return nil, err
		}
	}

	folderFilter := bson.M{
		"facility_id": facilityID,
		"category":    category,
		"parent_id":   nil,
	}
	fileFilter := bson.M{
		"facility_id": facilityID,
		"category":    category,
		"folder_id":   nil,
	}
	if folderID != nil {
		folderFilter["parent_id"] = *folderID
		fileFilter["folder_id"] = *folderID
	}

	cursor, err := s.folderCollection.Find(ctx, folderFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	var folders []models.Folder
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, fmt.Errorf("failed to decode folders: %w", err)
	}

	cursor, err = s.fileCollection.Find(ctx, fileFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	var files []models.File
	if err = cursor.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("failed to decode files: %w", err)
	}

	folders = filterFolders(folders, searchTerm)
	files = filterFiles(files, filterType, searchTerm)
	sortFolders(folders, opts)
	sortFiles(files, opts)

	return &DocumentListing{
		Folders:     folders,
		Files:       files,
		Entries:     combineEntries(folders, files),
		Breadcrumbs: breadcrumbs,
		SortOptions: ListSortOptions(),
	}, nil
}

// Breadcrumbs walks the parent chain up to the category root and returns the
// path root-first, starting with the synthetic root entry.
func (s *FolderService) Breadcrumbs(ctx context.Context, facilityID, folderID primitive.ObjectID) ([]Breadcrumb, error) {
	var chain []models.Folder

	current := &folderID
	for depth := 0; current != nil; depth++ {
		if depth >= maxFolderDepth {
			return nil, fmt.Errorf("folder tree deeper than %d levels (cycle?)", maxFolderDepth)
		}

		folder, err := s.GetFolder(ctx, facilityID, *current)
		if err != nil {
			return nil, err
		}
		chain = append(chain, *folder)
		current = folder.ParentID
	}

	return assembleBreadcrumbs(chain), nil
}

// checkSiblingName enforces sibling-name uniqueness within
// (facility, category, parent). Query-before-write: two concurrent creates
// can race past it, accepted for the low per-facility write rate.
func (s *FolderService) checkSiblingName(ctx context.Context, facilityID primitive.ObjectID, category models.Category, parentID *primitive.ObjectID, name string, excludeID *primitive.ObjectID) error {
	filter := bson.M{
		"facility_id": facilityID,
		"category":    category,
		"name":        name,
		"parent_id":   nil,
	}
	if parentID != nil {
		filter["parent_id"] = *parentID
	}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	err := s.folderCollection.FindOne(ctx, filter).Err()
	if err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}
