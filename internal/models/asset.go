package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset represents a piece of equipment installed in a plant room.
type Asset struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PlantRoomRef    string             `json:"plant_room_ref" bson:"plant_room_ref"` // PlantRoom.RefCode
	Name            string             `json:"name" bson:"name"`
	Category        string             `json:"category" bson:"category"` // "boiler", "pump", "ahu", "water_heater", "controls", "other"
	Manufacturer    string             `json:"manufacturer" bson:"manufacturer"`
	SerialNumber    string             `json:"serial_number" bson:"serial_number"`
	Operational     bool               `json:"operational" bson:"operational"`
	Frequency       string             `json:"frequency" bson:"frequency"` // maintenance frequency label, see NormalizeFrequency
	LastServiceDate *time.Time         `json:"last_service_date,omitempty" bson:"last_service_date,omitempty"`
	Notes           string             `json:"notes" bson:"notes"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
