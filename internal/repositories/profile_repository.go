package repositories

import (
	"context"
	"strings"

	"github.com/Divya-010704/TripTeller/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileRepository defines the interface for profile aggregate operations.
// The profile document is the save unit: ReplaceProfile persists the whole
// aggregate or nothing.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetProfiles(ctx context.Context) ([]models.Profile, error)
	ReplaceProfile(ctx context.Context, profile *models.Profile) error
}

// MongoProfileRepository implements ProfileRepository for MongoDB
type MongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoProfileRepository
func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{collection: db.Collection("profiles")}
}

// NormalizeEmail is the canonical form used for the one-profile-per-email
// uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateProfile inserts a new profile aggregate. The email is stored
// normalized so the uniqueness lookup stays case-insensitive.
func (r *MongoProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	profile.ID = primitive.NewObjectID()
	profile.Email = NormalizeEmail(profile.Email)
	profile.Version = 1
	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetProfileByID retrieves a profile aggregate by ID
func (r *MongoProfileRepository) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("profile", id)
	}

	var profile models.Profile
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetProfileByEmail retrieves a profile by its normalized account email
func (r *MongoProfileRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"email": NormalizeEmail(email)}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("profile", email)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetProfiles retrieves all profile aggregates
func (r *MongoProfileRepository) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// ReplaceProfile writes the whole aggregate back, guarded by the version the
// profile was loaded with. A version mismatch means another writer saved
// first; the caller is expected to reload and reapply.
func (r *MongoProfileRepository) ReplaceProfile(ctx context.Context, profile *models.Profile) error {
	loadedVersion := profile.Version
	profile.Version = loadedVersion + 1

	filter := bson.M{"_id": profile.ID, "version": loadedVersion}
	res, err := r.collection.ReplaceOne(ctx, filter, profile)
	if err != nil {
		profile.Version = loadedVersion
		return models.NewInternalError(err)
	}
	if res.MatchedCount == 0 {
		profile.Version = loadedVersion
		return models.NewConflictError("profile was modified concurrently")
	}
	return nil
}
