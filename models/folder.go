package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Folder struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FacilityID primitive.ObjectID  `bson:"facility_id" json:"facility_id"`
	Category   Category            `bson:"category" json:"category"`
	ParentID   *primitive.ObjectID `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Name       string              `bson:"name" json:"name"`
	CreatedBy  primitive.ObjectID  `bson:"created_by" json:"created_by"`
	CreatedAt  time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updated_at"`
}
