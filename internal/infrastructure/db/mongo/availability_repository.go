package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

const collectionAvailability = "availability"

type AvailabilityRepository struct {
	col *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{col: db.Collection(collectionAvailability)}
}

// ListByExpert returns the expert's weekly windows ordered by day then start
// time.
func (r *AvailabilityRepository) ListByExpert(ctx context.Context, expertID string) ([]domain.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}, {Key: "start_time", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"expert_id": expertID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer cur.Close(ctx)

	windows := make([]domain.Availability, 0)
	if err := cur.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return windows, nil
}
