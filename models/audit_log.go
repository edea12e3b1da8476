package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ActorID    primitive.ObjectID `bson:"actor_id" json:"actor_id"`
	Action     string             `bson:"action" json:"action"` // "folder_created", "file_uploaded", ...
	TargetType string             `bson:"target_type" json:"target_type"` // "folder" or "file"
	TargetID   primitive.ObjectID `bson:"target_id" json:"target_id"`
	FacilityID primitive.ObjectID `bson:"facility_id" json:"facility_id"`
	Context    map[string]any     `bson:"context,omitempty" json:"context,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
