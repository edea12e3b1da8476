package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"facilitydocs/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrBlobNotFound is returned by storage backends when a key has no blob
// behind it (a stale catalog reference).
var ErrBlobNotFound = errors.New("blob not found in storage")

type StoreResult struct {
	Size int64
	SHA1 string
}

// StorageService is the key-addressable blob store behind the file catalog.
// Keys are generated once at upload time and never reused, so backends need
// no overwrite protection.
type StorageService interface {
	Save(ctx context.Context, key string, r io.Reader) (*StoreResult, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// NewStoredKey builds the blob key for an upload, namespaced by facility and
// category so backends stay partitioned the same way the catalog is.
func NewStoredKey(facilityID primitive.ObjectID, category models.Category, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("facilities/%s/%s/%s%s", facilityID.Hex(), category, uuid.New().String(), ext)
}
