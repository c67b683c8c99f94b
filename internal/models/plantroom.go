package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlantRoom represents a physical plant room housing equipment assets.
type PlantRoom struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RefCode   string             `json:"ref_code" bson:"ref_code"` // external reference used by asset records, e.g. "PR-BLOCK-A-01"
	Name      string             `json:"name" bson:"name"`
	Block     string             `json:"block" bson:"block"`
	Site      string             `json:"site" bson:"site"`
	LGSRDate  *time.Time         `json:"lgsr_date,omitempty" bson:"lgsr_date,omitempty"` // Landlord Gas Safety Record expiry
	Notes     string             `json:"notes" bson:"notes"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
