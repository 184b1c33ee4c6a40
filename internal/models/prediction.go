package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PredictionRecord is one scored request, appended to the per-domain history
// collection. Records are never mutated or deleted once written; duplicate
// submissions create duplicate records.
//
// Resultado is only set for the diabetes domain ("positivo"/"negativo").
type PredictionRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username    string             `bson:"username,omitempty" json:"username,omitempty"`
	Features    map[string]float64 `bson:"features" json:"features"`
	Probability float64            `bson:"probabilidad" json:"probabilidad"`
	Resultado   string             `bson:"resultado,omitempty" json:"resultado,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`

	// HexID carries the Mongo ObjectID rendered as a string in responses.
	HexID string `bson:"-" json:"id"`
}
