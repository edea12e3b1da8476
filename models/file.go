package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type File struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FacilityID   primitive.ObjectID  `bson:"facility_id" json:"facility_id"`
	Category     Category            `bson:"category" json:"category"`
	FolderID     *primitive.ObjectID `bson:"folder_id,omitempty" json:"folder_id,omitempty"`
	OriginalName string              `bson:"original_name" json:"original_name"`
	StoredKey    string              `bson:"stored_key" json:"-"`
	Size         int64               `bson:"size" json:"size"`
	ContentType  string              `bson:"content_type" json:"content_type"`
	Extension    string              `bson:"extension" json:"extension"`
	SHA1Hash     string              `bson:"sha1_hash" json:"sha1_hash"`
	UploadedBy   primitive.ObjectID  `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}
