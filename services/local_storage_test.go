package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"testing"

	"facilitydocs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	storage, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("inspection report contents")
	key := NewStoredKey(primitive.NewObjectID(), models.CategoryMain, "report.pdf")

	result, err := storage.Save(ctx, key, bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), result.Size)

	sum := sha1.Sum(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), result.SHA1)

	reader, err := storage.Open(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLocalStorage_DeleteRemovesBlob(t *testing.T) {
	storage, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	key := NewStoredKey(primitive.NewObjectID(), models.CategoryContracts, "contract.pdf")

	_, err = storage.Save(ctx, key, bytes.NewReader([]byte("data")))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, key))

	_, err = storage.Open(ctx, key)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalStorage_MissingBlob(t *testing.T) {
	storage, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = storage.Open(ctx, "facilities/none/main/missing.pdf")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	err = storage.Delete(ctx, "facilities/none/main/missing.pdf")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalStorage_RejectsTraversalKeys(t *testing.T) {
	storage, err := NewLocalStorageService(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = storage.Save(ctx, "../escape.pdf", bytes.NewReader([]byte("x")))
	assert.Error(t, err)

	_, err = storage.Open(ctx, "")
	assert.Error(t, err)
}

func TestNewStoredKey(t *testing.T) {
	facilityID := primitive.NewObjectID()

	key := NewStoredKey(facilityID, models.CategoryLifelineElectrical, "Wiring Diagram.DWG")
	assert.Contains(t, key, "facilities/"+facilityID.Hex()+"/lifeline_electrical/")
	assert.Equal(t, ".dwg", key[len(key)-4:])

	// Keys are never reused across uploads of the same name.
	other := NewStoredKey(facilityID, models.CategoryLifelineElectrical, "Wiring Diagram.DWG")
	assert.NotEqual(t, key, other)
}
