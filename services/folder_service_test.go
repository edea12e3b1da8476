package services

import (
	"context"
	"testing"
	"time"

	"facilitydocs/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const mockNamespace = "facilitydocs.folders"

func folderDoc(id, facilityID primitive.ObjectID, name string, category models.Category, parentID *primitive.ObjectID) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "facility_id", Value: facilityID},
		{Key: "category", Value: string(category)},
		{Key: "name", Value: name},
		{Key: "created_by", Value: primitive.NewObjectID()},
		{Key: "created_at", Value: time.Now()},
		{Key: "updated_at", Value: time.Now()},
	}
	if parentID != nil {
		doc = append(doc, bson.E{Key: "parent_id", Value: *parentID})
	}
	return doc
}

func countReply(n int) bson.D {
	return bson.D{{Key: "n", Value: n}}
}

func TestFolderService_CreateFolder_DuplicateSiblingName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate name at category root", func(mt *mtest.T) {
		db := mt.Client.Database("facilitydocs")
		svc := NewFolderService(db, NewAuditService(db))

		facilityID := primitive.NewObjectID()

		// Sibling lookup finds an existing folder with the same name.
		mt.AddMockResponses(mtest.CreateCursorResponse(1, mockNamespace, mtest.FirstBatch,
			folderDoc(primitive.NewObjectID(), facilityID, "Inspections", models.CategoryMain, nil)))

		folder, err := svc.CreateFolder(context.Background(), facilityID, nil, "Inspections", nil, primitive.NewObjectID())

		assert.Nil(t, folder)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	mt.Run("no sibling collision succeeds", func(mt *mtest.T) {
		db := mt.Client.Database("facilitydocs")
		svc := NewFolderService(db, NewAuditService(db))

		facilityID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch),
			mtest.CreateSuccessResponse(), // folder insert
			mtest.CreateSuccessResponse(), // audit insert
		)

		folder, err := svc.CreateFolder(context.Background(), facilityID, nil, "Inspections", nil, primitive.NewObjectID())

		assert.NoError(t, err)
		if assert.NotNil(t, folder) {
			assert.Equal(t, models.CategoryMain, folder.Category)
			assert.Equal(t, "Inspections", folder.Name)
		}
	})
}

func TestFolderService_RenameFolder_OntoExistingSibling(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rename collides with sibling", func(mt *mtest.T) {
		db := mt.Client.Database("facilitydocs")
		svc := NewFolderService(db, NewAuditService(db))

		facilityID := primitive.NewObjectID()
		folderID := primitive.NewObjectID()

		mt.AddMockResponses(
			// The folder being renamed.
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch,
				folderDoc(folderID, facilityID, "Reports", models.CategoryContracts, nil)),
			// A sibling already named "Invoices".
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch,
				folderDoc(primitive.NewObjectID(), facilityID, "Invoices", models.CategoryContracts, nil)),
		)

		folder, err := svc.RenameFolder(context.Background(), facilityID, folderID, "Invoices", primitive.NewObjectID())

		assert.Nil(t, folder)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestFolderService_DeleteFolder_RefusesNonEmpty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("folder with a subfolder", func(mt *mtest.T) {
		db := mt.Client.Database("facilitydocs")
		svc := NewFolderService(db, NewAuditService(db))

		facilityID := primitive.NewObjectID()
		folderID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch,
				folderDoc(folderID, facilityID, "Archive", models.CategoryMain, nil)),
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch, countReply(1)), // subfolders
			mtest.CreateCursorResponse(0, "facilitydocs.files", mtest.FirstBatch, countReply(0)),
		)

		err := svc.DeleteFolder(context.Background(), facilityID, folderID, primitive.NewObjectID())

		assert.ErrorIs(t, err, ErrFolderNotEmpty)
	})

	mt.Run("folder with a file", func(mt *mtest.T) {
		db := mt.Client.Database("facilitydocs")
		svc := NewFolderService(db, NewAuditService(db))

		facilityID := primitive.NewObjectID()
		folderID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch,
				folderDoc(folderID, facilityID, "Archive", models.CategoryMain, nil)),
			mtest.CreateCursorResponse(0, mockNamespace, mtest.FirstBatch, countReply(0)),
			mtest.CreateCursorResponse(0, "facilitydocs.files", mtest.FirstBatch, countReply(1)),
		)

		err := svc.DeleteFolder(context.Background(), facilityID, folderID, primitive.NewObjectID())

		assert.ErrorIs(t, err, ErrFolderNotEmpty)
	})
}

func TestFolderService_CreateFolder_ParentCategoryConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("requested category disagrees with parent", func(mt *mtest.T) {
		db := mt.Client.Database("facilitydocs")
		svc := NewFolderService(db, NewAuditService(db))

		facilityID := primitive.NewObjectID()
		parentID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(1, mockNamespace, mtest.FirstBatch,
			folderDoc(parentID, facilityID, "Contracts", models.CategoryContracts, nil)))

		requested := models.CategoryLifelineGas
		folder, err := svc.CreateFolder(context.Background(), facilityID, &parentID, "Gas Meters", &requested, primitive.NewObjectID())

		assert.Nil(t, folder)
		assert.ErrorIs(t, err, ErrCategoryMismatch)
	})
}
