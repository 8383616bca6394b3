package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

const collectionProfiles = "profiles"

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

// Create inserts a new profile document. IDs are hex strings generated here
// so related collections can join on plain string equality.
func (r *ProfileRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return user, nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &user, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &user, nil
}

// Update applies the non-nil field changes and returns the stored row.
func (r *ProfileRepository) Update(ctx context.Context, id string, updates ports.ProfileUpdates) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if updates.Name != nil {
		set["name"] = *updates.Name
	}
	if updates.AvatarURL != nil {
		set["avatar_url"] = *updates.AvatarURL
	}
	if updates.Bio != nil {
		set["bio"] = *updates.Bio
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user domain.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}

// EnsureIndexes creates necessary indexes on the profiles collection.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
