package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a quick-saved trip idea, separate from the profile post history.
type Trip struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Budget    int                `json:"budget" bson:"budget"`
	City      string             `json:"city" bson:"city"`
	Days      int                `json:"days" bson:"days"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// CreateTripRequest defines the request body for saving a trip idea.
type CreateTripRequest struct {
	Budget int    `json:"budget" validate:"required,min=0"`
	City   string `json:"city" validate:"required"`
	Days   int    `json:"days" validate:"required,min=1"`
}
