package db

import (
	"context"
	"time"

	"github.com/ukydev/plant-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlantRoomCollection defines the interface for plant room data operations.
type PlantRoomCollection interface {
	InsertPlantRoom(ctx context.Context, room models.PlantRoom) error
	FindPlantRooms(ctx context.Context, filter bson.M) ([]models.PlantRoom, error)
	FindPlantRoomByID(ctx context.Context, id string) (*models.PlantRoom, error)
	UpdatePlantRoom(ctx context.Context, id string, room models.PlantRoom) error
	DeletePlantRoom(ctx context.Context, id string) error
	MapRefsToIDs(ctx context.Context, refs []string) (map[string]primitive.ObjectID, error)
}

// AssetCollection defines the interface for equipment asset data operations.
type AssetCollection interface {
	InsertAsset(ctx context.Context, asset models.Asset) error
	FindAssets(ctx context.Context, filter bson.M) ([]models.Asset, error)
	FindAssetByID(ctx context.Context, id string) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id string, asset models.Asset) error
	DeleteAsset(ctx context.Context, id string) error
	FindOperationalWithLastService(ctx context.Context) ([]models.Asset, error)
}

// TaskCollection defines the interface for maintenance task data operations.
type TaskCollection interface {
	InsertTask(ctx context.Context, task models.MaintenanceTask) (*models.MaintenanceTask, error)
	InsertTasks(ctx context.Context, tasks []models.MaintenanceTask) error
	FindTasks(ctx context.Context, filter bson.M) ([]models.MaintenanceTask, error)
	FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error)
	UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error
	DeleteTask(ctx context.Context, id string) error
	FindExistingPPMTask(ctx context.Context, assetID string, minDueDate time.Time) (*models.MaintenanceTask, error)
	FindIncompleteDueBefore(ctx context.Context, before time.Time) ([]models.MaintenanceTask, error)
}

// InspectionCollection defines the interface for inspection log operations.
type InspectionCollection interface {
	InsertInspection(ctx context.Context, log models.InspectionLog) (*models.InspectionLog, error)
	FindInspections(ctx context.Context, filter bson.M) ([]models.InspectionLog, error)
	FindInspectionByID(ctx context.Context, id string) (*models.InspectionLog, error)
}
