package repositories

import (
	"context"
	"time"

	"github.com/Divya-010704/TripTeller/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TripRepository defines the interface for quick-saved trip ideas
type TripRepository interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
}

// MongoTripRepository implements TripRepository for MongoDB
type MongoTripRepository struct {
	collection *mongo.Collection
}

// NewMongoTripRepository creates a new MongoTripRepository
func NewMongoTripRepository(db *mongo.Database) *MongoTripRepository {
	return &MongoTripRepository{collection: db.Collection("trips")}
}

// CreateTrip inserts a new trip document
func (r *MongoTripRepository) CreateTrip(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, trip); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
