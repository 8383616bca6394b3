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
)

const collectionSessionTypes = "session_types"

type SessionTypeRepository struct {
	col *mongo.Collection
}

func NewSessionTypeRepository(db *mongo.Database) *SessionTypeRepository {
	return &SessionTypeRepository{col: db.Collection(collectionSessionTypes)}
}

func (r *SessionTypeRepository) Create(ctx context.Context, st *domain.SessionType) (*domain.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if st.ID == "" {
		st.ID = primitive.NewObjectID().Hex()
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, st); err != nil {
		return nil, fmt.Errorf("insert session type: %w", err)
	}
	return st, nil
}

func (r *SessionTypeRepository) FindByID(ctx context.Context, id string) (*domain.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var st domain.SessionType
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionTypeNotFound
		}
		return nil, fmt.Errorf("find session type: %w", err)
	}
	return &st, nil
}

// ListByExpert returns the expert's session types in insertion order.
func (r *SessionTypeRepository) ListByExpert(ctx context.Context, expertID string) ([]domain.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"expert_id": expertID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list session types: %w", err)
	}
	defer cur.Close(ctx)

	types := make([]domain.SessionType, 0)
	if err := cur.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("list session types: %w", err)
	}
	return types, nil
}

// EnsureIndexes creates necessary indexes on the session types collection.
func (r *SessionTypeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "expert_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
