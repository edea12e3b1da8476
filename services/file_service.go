package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"facilitydocs/models"
	"facilitydocs/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FileService struct {
	fileCollection   *mongo.Collection
	folderCollection *mongo.Collection
	orphanCollection *mongo.Collection
	storage          StorageService
	auditService     *AuditService
	maxFileSize      int64
}

func NewFileService(db *mongo.Database, storage StorageService, auditService *AuditService, maxFileSize int64) *FileService {
	return &FileService{
		fileCollection:   db.Collection("files"),
		folderCollection: db.Collection("folders"),
		orphanCollection: db.Collection("orphaned_blobs"),
		storage:          storage,
		auditService:     auditService,
		maxFileSize:      maxFileSize,
	}
}

// UploadFiles validates and stores a batch of uploads into one folder (nil
// for the category root). Each blob is written before its row; a storage
// failure aborts the batch with no row for the failed file, and rows already
// written in this batch are rolled back together with their blobs.
func (s *FileService) UploadFiles(ctx context.Context, facilityID primitive.ObjectID, folderID *primitive.ObjectID, requested *models.Category, fileHeaders []*multipart.FileHeader, actorID primitive.ObjectID) ([]models.File, error) {
	if len(fileHeaders) == 0 {
		return nil, fmt.Errorf("%w: no files to upload", ErrValidation)
	}

	category, err := s.resolveCategory(ctx, facilityID, folderID, requested)
	if err != nil {
		return nil, err
	}

	// Validate the whole batch before touching storage.
	for _, header := range fileHeaders {
		if err := utils.ValidateFileName(header.Filename); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if err := utils.ValidateExtension(header.Filename); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if err := utils.ValidateFileSize(header.Size, s.maxFileSize); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	var uploaded []models.File

	for _, header := range fileHeaders {
		src, err := header.Open()
		if err != nil {
			s.rollbackUploads(ctx, uploaded)
			return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
		}

		key := NewStoredKey(facilityID, category, header.Filename)
		result, err := s.storage.Save(ctx, key, src)
		src.Close()
		if err != nil {
			s.rollbackUploads(ctx, uploaded)
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}

		now := time.Now()
		file := models.File{
			ID:           primitive.NewObjectID(),
			FacilityID:   facilityID,
			Category:     category,
			FolderID:     folderID,
			OriginalName: header.Filename,
			StoredKey:    key,
			Size:         result.Size,
			ContentType:  contentTypeFor(header.Filename),
			Extension:    strings.ToLower(filepath.Ext(header.Filename)),
			SHA1Hash:     result.SHA1,
			UploadedBy:   actorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if _, err := s.fileCollection.InsertOne(ctx, file); err != nil {
			s.deleteBlobBestEffort(ctx, key)
			s.rollbackUploads(ctx, uploaded)
			return nil, fmt.Errorf("failed to save file metadata for %s: %w", header.Filename, err)
		}

		s.auditService.Record(ctx, actorID, "file_uploaded", "file", file.ID, facilityID, map[string]any{
			"name":     file.OriginalName,
			"category": category.String(),
			"size":     file.Size,
		})

		uploaded = append(uploaded, file)
	}

	return uploaded, nil
}

// RenameFile changes the catalog name only; the stored blob is untouched.
func (s *FileService) RenameFile(ctx context.Context, facilityID, fileID primitive.ObjectID, newName string, actorID primitive.ObjectID) (*models.File, error) {
	if err := utils.ValidateFileName(newName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := utils.ValidateExtension(newName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	file, err := s.GetFile(ctx, facilityID, fileID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extension := strings.ToLower(filepath.Ext(newName))
	update := bson.M{
		"$set": bson.M{
			"original_name": newName,
			"extension":     extension,
			"content_type":  contentTypeFor(newName),
			"updated_at":    now,
		},
	}

	if _, err := s.fileCollection.UpdateOne(ctx, bson.M{"_id": fileID}, update); err != nil {
		return nil, fmt.Errorf("failed to rename file: %w", err)
	}

	s.auditService.Record(ctx, actorID, "file_renamed", "file", fileID, facilityID, map[string]any{
		"from": file.OriginalName,
		"to":   newName,
	})

	file.OriginalName = newName
	file.Extension = extension
	file.UpdatedAt = now
	return file, nil
}

// MoveFile reassigns a file to targetFolderID (nil for the category root).
// The target must live in the same facility and category as the file.
func (s *FileService) MoveFile(ctx context.Context, facilityID, fileID primitive.ObjectID, targetFolderID *primitive.ObjectID, actorID primitive.ObjectID) (*models.File, error) {
	file, err := s.GetFile(ctx, facilityID, fileID)
	if err != nil {
		return nil, err
	}

	if targetFolderID != nil {
		var target models.Folder
		err := s.folderCollection.FindOne(ctx, bson.M{
			"_id":         *targetFolderID,
			"facility_id": facilityID,
		}).Decode(&target)

		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: target folder", ErrNotFound)
		} else if err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}

		if target.Category != file.Category {
			return nil, fmt.Errorf("%w: file is in %q, folder is in %q", ErrCategoryMismatch, file.Category, target.Category)
		}
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"folder_id":  targetFolderID,
			"updated_at": now,
		},
	}

	if _, err := s.fileCollection.UpdateOne(ctx, bson.M{"_id": fileID}, update); err != nil {
		return nil, fmt.Errorf("failed to move file: %w", err)
	}

	s.auditService.Record(ctx, actorID, "file_moved", "file", fileID, facilityID, map[string]any{
		"name": file.OriginalName,
	})

	file.FolderID = targetFolderID
	file.UpdatedAt = now
	return file, nil
}

// DeleteFile removes the blob and then the row. A failed blob delete never
// blocks the row delete: the key is queued for the sweeper job instead, so
// the catalog stays consistent and the blob is cleaned up eventually.
func (s *FileService) DeleteFile(ctx context.Context, facilityID, fileID primitive.ObjectID, actorID primitive.ObjectID) error {
	file, err := s.GetFile(ctx, facilityID, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, file.StoredKey); err != nil && !errors.Is(err, ErrBlobNotFound) {
		utils.LogError("failed to delete blob "+file.StoredKey+", queuing for sweep", err)
		s.queueOrphanedBlob(ctx, file.StoredKey)
	}

	if _, err := s.fileCollection.DeleteOne(ctx, bson.M{"_id": fileID}); err != nil {
		return fmt.Errorf("failed to delete file metadata: %w", err)
	}

	s.auditService.Record(ctx, actorID, "file_deleted", "file", fileID, facilityID, map[string]any{
		"name": file.OriginalName,
	})

	return nil
}

// DownloadFile opens the blob stream for a catalog row. A row whose blob is
// missing from storage reports not-found rather than a storage failure.
func (s *FileService) DownloadFile(ctx context.Context, facilityID, fileID primitive.ObjectID) (*models.File, io.ReadCloser, error) {
	file, err := s.GetFile(ctx, facilityID, fileID)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.Open(ctx, file.StoredKey)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return nil, nil, fmt.Errorf("%w: blob for file %s", ErrNotFound, file.OriginalName)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return file, reader, nil
}

func (s *FileService) GetFile(ctx context.Context, facilityID, fileID primitive.ObjectID) (*models.File, error) {
	var file models.File
	err := s.fileCollection.FindOne(ctx, bson.M{
		"_id":         fileID,
		"facility_id": facilityID,
	}).Decode(&file)

	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: file", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &file, nil
}

// resolveCategory decides the category for an upload. A folder is
// authoritative for everything inside it; an explicit request category that
// disagrees is an error, not an override.
func (s *FileService) resolveCategory(ctx context.Context, facilityID primitive.ObjectID, folderID *primitive.ObjectID, requested *models.Category) (models.Category, error) {
	if requested != nil && !requested.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, *requested)
	}

	if folderID == nil {
		if requested != nil {
			return *requested, nil
		}
		return models.CategoryMain, nil
	}

	var folder models.Folder
	err := s.folderCollection.FindOne(ctx, bson.M{
		"_id":         *folderID,
		"facility_id": facilityID,
	}).Decode(&folder)

	if err == mongo.ErrNoDocuments {
		return "", fmt.Errorf("%w: folder", ErrNotFound)
	} else if err != nil {
		return "", fmt.Errorf("database error: %w", err)
	}

	if requested != nil && *requested != folder.Category {
		return "", fmt.Errorf("%w: folder is in category %q", ErrCategoryMismatch, folder.Category)
	}
	return folder.Category, nil
}

// rollbackUploads undoes rows and blobs already written in a failed batch.
func (s *FileService) rollbackUploads(ctx context.Context, files []models.File) {
	for _, file := range files {
		s.deleteBlobBestEffort(ctx, file.StoredKey)
		if _, err := s.fileCollection.DeleteOne(ctx, bson.M{"_id": file.ID}); err != nil {
			utils.LogError("failed to roll back file row "+file.ID.Hex(), err)
		}
	}
}

func (s *FileService) deleteBlobBestEffort(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil && !errors.Is(err, ErrBlobNotFound) {
		utils.LogError("failed to delete blob "+key+", queuing for sweep", err)
		s.queueOrphanedBlob(ctx, key)
	}
}

func (s *FileService) queueOrphanedBlob(ctx context.Context, key string) {
	orphan := models.OrphanedBlob{
		ID:         primitive.NewObjectID(),
		StoredKey:  key,
		RecordedAt: time.Now(),
	}
	if _, err := s.orphanCollection.InsertOne(ctx, orphan); err != nil {
		utils.LogError("failed to queue orphaned blob "+key, err)
	}
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	switch ext {
	case ".dwg":
		return "image/vnd.dwg"
	case ".dxf":
		return "image/vnd.dxf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".ppt":
		return "application/vnd.ms-powerpoint"
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	default:
		return "application/octet-stream"
	}
}
