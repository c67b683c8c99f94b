package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspectionLog represents a site inspection entry for a plant room. A log
// recording a defect triggers a corrective follow-up task.
type InspectionLog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PlantRoomID primitive.ObjectID `json:"plant_room_id" bson:"plant_room_id"`
	AssetID     string             `json:"asset_id,omitempty" bson:"asset_id,omitempty"`
	Inspector   string             `json:"inspector" bson:"inspector"`
	Findings    string             `json:"findings" bson:"findings"`
	DefectFound bool               `json:"defect_found" bson:"defect_found"`
	Issue       string             `json:"issue" bson:"issue"` // description of the defect, required when DefectFound
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
