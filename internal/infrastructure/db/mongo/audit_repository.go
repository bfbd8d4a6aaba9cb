package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/academia-online/courses-api/internal/core/domain"
)

const eventsCollection = "enrollment_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(eventsCollection)}
}

type mongoEvent struct {
	EnrollmentID string    `bson:"enrollment_id"`
	UserID       string    `bson:"user_id"`
	CourseID     string    `bson:"course_id"`
	Action       string    `bson:"action"`
	Status       string    `bson:"status"`
	Progress     int       `bson:"progress"`
	ActorID      string    `bson:"actor_id,omitempty"`
	Timestamp    time.Time `bson:"timestamp"`
	RecordedAt   time.Time `bson:"recorded_at"`
}

// InsertEvent appends one lifecycle event to the audit collection.
func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.EnrollmentEvent) error {
	doc := mongoEvent{
		EnrollmentID: event.EnrollmentID,
		UserID:       event.UserID,
		CourseID:     event.CourseID,
		Action:       string(event.Action),
		Status:       string(event.Status),
		Progress:     event.Progress,
		ActorID:      event.ActorID,
		Timestamp:    event.Timestamp.UTC(),
		RecordedAt:   time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert enrollment event: %w", err)
	}
	return nil
}

// ListByEnrollment returns the audit trail for one enrollment, oldest first.
func (r *AuditRepository) ListByEnrollment(ctx context.Context, enrollmentID string) ([]domain.EnrollmentEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"enrollment_id": enrollmentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find enrollment events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]domain.EnrollmentEvent, 0)
	for cursor.Next(ctx) {
		var me mongoEvent
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode enrollment event: %w", err)
		}
		events = append(events, domain.EnrollmentEvent{
			EnrollmentID: me.EnrollmentID,
			UserID:       me.UserID,
			CourseID:     me.CourseID,
			Action:       domain.EnrollmentAction(me.Action),
			Status:       domain.EnrollmentStatus(me.Status),
			Progress:     me.Progress,
			ActorID:      me.ActorID,
			Timestamp:    me.Timestamp,
		})
	}
	return events, cursor.Err()
}

// EnsureIndexes creates the indexes the audit queries rely on.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "enrollment_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
