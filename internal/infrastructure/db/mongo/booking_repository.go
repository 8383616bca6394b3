package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sessionbook/booking-api/internal/core/domain"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// bookingPipeline nests the client profile, the expert with its own profile,
// and the session type under their relation names, ordered by scheduled_at
// ascending.
func bookingPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		lookupStage(collectionProfiles, "user_id", "_id", "profiles"),
		unwindStage("profiles"),
		lookupStage(collectionExperts, "expert_id", "_id", "experts"),
		unwindStage("experts"),
		lookupStage(collectionProfiles, "experts.user_id", "_id", "experts.profiles"),
		unwindStage("experts.profiles"),
		lookupStage(collectionSessionTypes, "session_type_id", "_id", "session_types"),
		unwindStage("session_types"),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "scheduled_at", Value: 1}}}},
	}
}

// Create inserts a new booking document.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}

	doc := *b
	doc.Profile = nil
	doc.Expert = nil
	doc.SessionType = nil

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	if err := r.col.FindOne(ctx, bson.M{"reference": reference}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *BookingRepository) ListByExpert(ctx context.Context, expertID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"expert_id": expertID})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, match bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, bookingPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cur.Next(ctx) {
		var b domain.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListActiveInRange returns non-cancelled bookings for the expert scheduled
// in [from, to). Used for slot computation; relations are not needed.
func (r *BookingRepository) ListActiveInRange(ctx context.Context, expertID string, from, to time.Time) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{
		"expert_id":    expertID,
		"status":       bson.M{"$ne": domain.BookingCancelled},
		"scheduled_at": bson.M{"$gte": from, "$lt": to},
	})
}

// ListConfirmedBefore returns confirmed bookings scheduled before the cutoff.
func (r *BookingRepository) ListConfirmedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{
		"status":       domain.BookingConfirmed,
		"scheduled_at": bson.M{"$lt": cutoff},
	})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cur.Next(ctx) {
		var b domain.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus persists a status change on the referenced booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	return r.updateOne(ctx, reference, update)
}

// UpdateFeedback sets feedback text and rating.
func (r *BookingRepository) UpdateFeedback(ctx context.Context, reference string, feedback string, rating int) error {
	update := bson.M{"$set": bson.M{
		"feedback":   feedback,
		"rating":     rating,
		"updated_at": time.Now().UTC(),
	}}
	return r.updateOne(ctx, reference, update)
}

func (r *BookingRepository) updateOne(ctx context.Context, reference string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"reference": reference}, update)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "scheduled_at", Value: 1}}},
		{Keys: bson.D{{Key: "expert_id", Value: 1}, {Key: "scheduled_at", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "scheduled_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
