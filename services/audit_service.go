package services

import (
	"context"
	"time"

	"facilitydocs/models"
	"facilitydocs/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuditService records every mutating document operation. Recording is
// best-effort: a failed insert is logged and never blocks the operation.
type AuditService struct {
	auditCollection *mongo.Collection
}

func NewAuditService(db *mongo.Database) *AuditService {
	return &AuditService{
		auditCollection: db.Collection("audit_logs"),
	}
}

func (s *AuditService) Record(ctx context.Context, actorID primitive.ObjectID, action, targetType string, targetID, facilityID primitive.ObjectID, auditContext map[string]any) {
	entry := models.AuditLog{
		ID:         primitive.NewObjectID(),
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		FacilityID: facilityID,
		Context:    auditContext,
		CreatedAt:  time.Now(),
	}

	if _, err := s.auditCollection.InsertOne(ctx, entry); err != nil {
		utils.LogError("failed to record audit entry "+action, err)
	}
}
