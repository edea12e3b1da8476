package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"facilitydocs/models"
	"facilitydocs/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BlobSweeper drains the orphaned_blobs queue: blobs whose storage delete
// failed after their catalog row was already removed. Each sweep retries the
// delete and drops the entry once the backend confirms the blob is gone.
type BlobSweeper struct {
	orphanCollection *mongo.Collection
	storage          services.StorageService
	logger           *log.Logger
}

func NewBlobSweeper(db *mongo.Database, storage services.StorageService) *BlobSweeper {
	return &BlobSweeper{
		orphanCollection: db.Collection("orphaned_blobs"),
		storage:          storage,
		logger:           log.New(log.Writer(), "[BLOB_SWEEPER] ", log.LstdFlags),
	}
}

// Start runs an immediate sweep and then one per interval. It blocks, so run
// it in its own goroutine.
func (bs *BlobSweeper) Start(interval time.Duration) {
	bs.logger.Printf("Starting blob sweeper, interval %v", interval)

	bs.runSweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		bs.runSweep()
	}
}

func (bs *BlobSweeper) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	swept, remaining, err := bs.Sweep(ctx)
	if err != nil {
		bs.logger.Printf("Sweep failed: %v", err)
		return
	}
	if swept > 0 || remaining > 0 {
		bs.logger.Printf("Sweep completed: %d blobs removed, %d still pending", swept, remaining)
	}
}

// Sweep processes the whole queue once, returning how many blobs were
// removed and how many remain pending.
func (bs *BlobSweeper) Sweep(ctx context.Context) (int, int, error) {
	cursor, err := bs.orphanCollection.Find(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var orphans []models.OrphanedBlob
	if err = cursor.All(ctx, &orphans); err != nil {
		return 0, 0, err
	}

	var swept, remaining int
	for _, orphan := range orphans {
		err := bs.storage.Delete(ctx, orphan.StoredKey)
		if err != nil && !errors.Is(err, services.ErrBlobNotFound) {
			bs.logger.Printf("Still unable to delete blob %s: %v", orphan.StoredKey, err)
			bs.bumpAttempts(ctx, orphan)
			remaining++
			continue
		}

		if _, err := bs.orphanCollection.DeleteOne(ctx, bson.M{"_id": orphan.ID}); err != nil {
			bs.logger.Printf("Failed to dequeue orphan %s: %v", orphan.StoredKey, err)
			remaining++
			continue
		}
		swept++
	}

	return swept, remaining, nil
}

func (bs *BlobSweeper) bumpAttempts(ctx context.Context, orphan models.OrphanedBlob) {
	update := bson.M{"$inc": bson.M{"attempts": 1}}
	if _, err := bs.orphanCollection.UpdateOne(ctx, bson.M{"_id": orphan.ID}, update); err != nil {
		bs.logger.Printf("Failed to update orphan %s: %v", orphan.StoredKey, err)
	}
}
