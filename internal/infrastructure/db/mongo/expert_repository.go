package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

const collectionExperts = "experts"

type ExpertRepository struct {
	col *mongo.Collection
}

func NewExpertRepository(db *mongo.Database) *ExpertRepository {
	return &ExpertRepository{col: db.Collection(collectionExperts)}
}

// expertPipeline nests the owning profile and the expert's session types
// under their relation names.
func expertPipeline(match bson.M, sort bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		lookupStage(collectionProfiles, "user_id", "_id", "profiles"),
		unwindStage("profiles"),
		lookupStage(collectionSessionTypes, "_id", "expert_id", "session_types"),
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	return pipeline
}

// Create inserts a new expert document. Session types are persisted
// separately by the session type repository.
func (r *ExpertRepository) Create(ctx context.Context, e *domain.Expert) (*domain.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if e.ID == "" {
		e.ID = primitive.NewObjectID().Hex()
	}

	doc := *e
	doc.Profile = nil
	doc.SessionTypes = nil

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert expert: %w", err)
	}
	return e, nil
}

func (r *ExpertRepository) FindByID(ctx context.Context, id string) (*domain.Expert, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ExpertRepository) FindByUserID(ctx context.Context, userID string) (*domain.Expert, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *ExpertRepository) findOne(ctx context.Context, match bson.M) (*domain.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, expertPipeline(match, nil))
	if err != nil {
		return nil, fmt.Errorf("find expert: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("find expert: %w", err)
		}
		return nil, domain.ErrExpertNotFound
	}

	var e domain.Expert
	if err := cur.Decode(&e); err != nil {
		return nil, fmt.Errorf("decode expert: %w", err)
	}
	return &e, nil
}

// ListByStatuses returns experts whose status is in the given set, oldest
// first, with relations nested.
func (r *ExpertRepository) ListByStatuses(ctx context.Context, statuses []domain.ExpertStatus) ([]*domain.Expert, error) {
	match := bson.M{"status": bson.M{"$in": statuses}}
	sort := bson.D{{Key: "created_at", Value: 1}}
	return r.list(ctx, expertPipeline(match, sort))
}

// ListAll returns every expert, newest first, for the admin review table.
func (r *ExpertRepository) ListAll(ctx context.Context) ([]*domain.Expert, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	return r.list(ctx, expertPipeline(bson.M{}, sort))
}

func (r *ExpertRepository) list(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	defer cur.Close(ctx)

	experts := make([]*domain.Expert, 0)
	for cur.Next(ctx) {
		var e domain.Expert
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode expert: %w", err)
		}
		experts = append(experts, &e)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	return experts, nil
}

// UpdateStatus persists a status change.
func (r *ExpertRepository) UpdateStatus(ctx context.Context, id string, status domain.ExpertStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update expert status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrExpertNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the experts collection.
func (r *ExpertRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
