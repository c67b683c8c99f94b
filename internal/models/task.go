package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task types. Status is an open set: downstream workflows may add values,
// so it stays a plain string with the known constants below.
const (
	TaskTypePPM        = "PPM"
	TaskTypeCorrective = "Corrective Maintenance"

	TaskStatusOpen       = "Open"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"

	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

// MaintenanceTask represents a scheduled or corrective maintenance job.
// The scheduler only ever creates tasks with status Open; all later status
// transitions belong to the task-management workflow.
type MaintenanceTask struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TaskRef       string             `json:"task_ref" bson:"task_ref"` // human-facing reference, e.g. "FOLLOWUP-LOG-1712345678901"
	PlantRoomID   primitive.ObjectID `json:"plant_room_id" bson:"plant_room_id"`
	AssetID       string             `json:"asset_id,omitempty" bson:"asset_id,omitempty"` // Asset.ID hex, optional
	DueDate       time.Time          `json:"due_date" bson:"due_date"`
	Type          string             `json:"type" bson:"type"`         // "PPM", "Corrective Maintenance"
	Status        string             `json:"status" bson:"status"`     // "Open", "In Progress", "Completed", ...
	Priority      string             `json:"priority" bson:"priority"` // "Low", "Medium", "High"
	Notes         string             `json:"notes" bson:"notes"`
	AssigneeID    string             `json:"assignee_id,omitempty" bson:"assignee_id,omitempty"`
	AutoGenerated bool               `json:"auto_generated" bson:"auto_generated"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// OverdueTask is a maintenance task joined with display fields for the
// overdue dashboard, plus how many whole days past due it is.
type OverdueTask struct {
	Task           MaintenanceTask `json:"task" bson:"task"`
	AssetName      string          `json:"asset_name" bson:"asset_name"`
	PlantRoomBlock string          `json:"plant_room_block" bson:"plant_room_block"`
	AssigneeEmail  string          `json:"assignee_email" bson:"assignee_email"`
	DaysPastDue    int             `json:"days_past_due" bson:"days_past_due"`
}
