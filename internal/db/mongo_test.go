package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ukydev/plant-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestConnectMongo_BadURI(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://bad:uri")
	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestInsertPlantRoom_NilCollection(t *testing.T) {
	coll := &MongoPlantRoomCollection{Collection: nil}
	err := coll.InsertPlantRoom(context.Background(), models.PlantRoom{})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestMapRefsToIDs_NilCollection(t *testing.T) {
	coll := &MongoPlantRoomCollection{Collection: nil}
	_, err := coll.MapRefsToIDs(context.Background(), []string{"PR-A-01"})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestFindOperationalWithLastService_NilCollection(t *testing.T) {
	coll := &MongoAssetCollection{Collection: nil}
	_, err := coll.FindOperationalWithLastService(context.Background())
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestInsertTask_NilCollection(t *testing.T) {
	coll := &MongoTaskCollection{Collection: nil}
	_, err := coll.InsertTask(context.Background(), models.MaintenanceTask{})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestInsertTasks_EmptyBatchIsNoop(t *testing.T) {
	coll := &MongoTaskCollection{Collection: nil}
	// An empty batch never touches the collection.
	if err := coll.InsertTasks(context.Background(), nil); err != nil {
		t.Errorf("expected nil error for empty batch, got %v", err)
	}
}

func TestFindExistingPPMTask_NilCollection(t *testing.T) {
	coll := &MongoTaskCollection{Collection: nil}
	_, err := coll.FindExistingPPMTask(context.Background(), "abc", time.Now())
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestInsertInspection_NilCollection(t *testing.T) {
	coll := &MongoInspectionCollection{Collection: nil}
	_, err := coll.InsertInspection(context.Background(), models.InspectionLog{})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

// Integration test (requires running MongoDB)
func TestTaskCollection_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" || uri == "uri" {
		t.Skip("MONGO_URI not set or invalid, skipping integration test")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
		return
	}
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "maintenance"
	}
	collection := client.Database(dbName).Collection("tasks_integration_test")
	defer collection.Drop(context.Background())

	if err := EnsureTaskIndexes(ctx, collection); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	coll := &MongoTaskCollection{Collection: collection}
	due := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	task := models.MaintenanceTask{
		AssetID:       "asset-1",
		DueDate:       due,
		Type:          models.TaskTypePPM,
		Status:        models.TaskStatusOpen,
		AutoGenerated: true,
	}

	if err := coll.InsertTasks(ctx, []models.MaintenanceTask{task}); err != nil {
		t.Fatalf("expected insert to succeed, got error: %v", err)
	}

	// A second insert for the same asset and due date must hit the unique
	// partial index.
	if err := coll.InsertTasks(ctx, []models.MaintenanceTask{task}); err == nil {
		t.Error("expected duplicate insert to fail against unique index")
	}

	found, err := coll.FindExistingPPMTask(ctx, "asset-1", due.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("expected lookup to succeed, got error: %v", err)
	}
	if found == nil {
		t.Error("expected to find existing PPM task")
	}

	overdue, err := coll.FindIncompleteDueBefore(ctx, due.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("expected overdue query to succeed, got error: %v", err)
	}
	if len(overdue) != 1 {
		t.Errorf("expected 1 incomplete task, got %d", len(overdue))
	}
}
