package services

import (
	"context"
	"fmt"
	"time"

	"facilitydocs/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FacilityService struct {
	facilityCollection *mongo.Collection
}

func NewFacilityService(db *mongo.Database) *FacilityService {
	return &FacilityService{
		facilityCollection: db.Collection("facilities"),
	}
}

func (s *FacilityService) CreateFacility(ctx context.Context, name, address string) (*models.Facility, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: facility name cannot be empty", ErrValidation)
	}

	now := time.Now()
	facility := models.Facility{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.facilityCollection.InsertOne(ctx, facility); err != nil {
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}
	return &facility, nil
}

func (s *FacilityService) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	cursor, err := s.facilityCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	if err = cursor.All(ctx, &facilities); err != nil {
		return nil, fmt.Errorf("failed to decode facilities: %w", err)
	}
	return facilities, nil
}

func (s *FacilityService) GetFacility(ctx context.Context, facilityID primitive.ObjectID) (*models.Facility, error) {
	var facility models.Facility
	err := s.facilityCollection.FindOne(ctx, bson.M{"_id": facilityID}).Decode(&facility)

	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: facility", ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &facility, nil
}
