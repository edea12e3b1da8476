package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrphanedBlob records a stored blob whose delete failed after its metadata
// row was already removed. The sweeper job retries these until the backend
// confirms the blob is gone.
type OrphanedBlob struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoredKey  string             `bson:"stored_key" json:"stored_key"`
	RecordedAt time.Time          `bson:"recorded_at" json:"recorded_at"`
	Attempts   int                `bson:"attempts" json:"attempts"`
}
