package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ukydev/plant-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskCollection implements TaskCollection for MongoDB.
type MongoTaskCollection struct {
	Collection *mongo.Collection
}

// InsertTask inserts a single task record and returns the created record.
func (c *MongoTaskCollection) InsertTask(ctx context.Context, task models.MaintenanceTask) (*models.MaintenanceTask, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	result, err := c.Collection.InsertOne(ctx, task)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return &task, nil
}

// InsertTasks inserts a batch of task records in one InsertMany call. The
// batch is ordered, so a failure is reported as a single error for the whole
// batch with no partial-success accounting.
func (c *MongoTaskCollection) InsertTasks(ctx context.Context, tasks []models.MaintenanceTask) error {
	if len(tasks) == 0 {
		return nil
	}
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	docs := make([]interface{}, 0, len(tasks))
	now := time.Now()
	for _, task := range tasks {
		task.CreatedAt = now
		task.UpdatedAt = now
		docs = append(docs, task)
	}
	_, err := c.Collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// FindTasks queries task records from the collection.
func (c *MongoTaskCollection) FindTasks(ctx context.Context, filter bson.M) ([]models.MaintenanceTask, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var tasks []models.MaintenanceTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTaskByID finds a task by its ID.
func (c *MongoTaskCollection) FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID: %w", err)
	}
	var task models.MaintenanceTask
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("task not found")
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates a task by its ID.
func (c *MongoTaskCollection) UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid task ID: %w", err)
	}
	task.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": task})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

// DeleteTask deletes a task by its ID.
func (c *MongoTaskCollection) DeleteTask(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid task ID: %w", err)
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

// FindExistingPPMTask returns a PPM task for the asset whose due date is on
// or after minDueDate, or nil if none exists. Manually created PPM tasks
// count too, so generation does not duplicate one an engineer already raised.
func (c *MongoTaskCollection) FindExistingPPMTask(ctx context.Context, assetID string, minDueDate time.Time) (*models.MaintenanceTask, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var task models.MaintenanceTask
	err := c.Collection.FindOne(ctx, bson.M{
		"asset_id": assetID,
		"type":     models.TaskTypePPM,
		"due_date": bson.M{"$gte": minDueDate},
	}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// FindIncompleteDueBefore returns tasks not yet completed whose due date is
// strictly before the given time.
func (c *MongoTaskCollection) FindIncompleteDueBefore(ctx context.Context, before time.Time) ([]models.MaintenanceTask, error) {
	return c.FindTasks(ctx, bson.M{
		"status":   bson.M{"$ne": models.TaskStatusCompleted},
		"due_date": bson.M{"$lt": before},
	})
}

// MongoInspectionCollection implements InspectionCollection for MongoDB.
type MongoInspectionCollection struct {
	Collection *mongo.Collection
}

// InsertInspection inserts an inspection log entry and returns the created record.
func (c *MongoInspectionCollection) InsertInspection(ctx context.Context, log models.InspectionLog) (*models.InspectionLog, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	log.CreatedAt = time.Now()
	log.UpdatedAt = time.Now()
	result, err := c.Collection.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		log.ID = oid
	}
	return &log, nil
}

// FindInspections queries inspection log entries from the collection.
func (c *MongoInspectionCollection) FindInspections(ctx context.Context, filter bson.M) ([]models.InspectionLog, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var logs []models.InspectionLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// FindInspectionByID finds an inspection log entry by its ID.
func (c *MongoInspectionCollection) FindInspectionByID(ctx context.Context, id string) (*models.InspectionLog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid inspection ID: %w", err)
	}
	var log models.InspectionLog
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&log)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("inspection not found")
		}
		return nil, err
	}
	return &log, nil
}
