package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"pulsecrm/database"
	"pulsecrm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo creates a new instance of MeetingRepository using MongoDB.
func NewMongoMeetingRepo() MeetingRepository {
	coll := database.Collection("meetings")
	repo := &MongoMeetingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMeetingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoMeetingRepo) GetByID(id string) (*models.Meeting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var meeting models.Meeting
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&meeting); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch meeting with id %s: %w", id, err)
	}
	return &meeting, nil
}

func (r *MongoMeetingRepo) GetAll() ([]models.Meeting, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}

func (r *MongoMeetingRepo) GetUpcoming(after time.Time) ([]models.Meeting, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":     models.MeetingStatusScheduled,
		"start_time": bson.M{"$gte": after},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}

func (r *MongoMeetingRepo) Create(meeting *models.Meeting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

func (r *MongoMeetingRepo) Update(meeting *models.Meeting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	meeting.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": meeting.ID}, bson.M{"$set": meeting})
	if err != nil {
		return fmt.Errorf("failed to update meeting with id %s: %w", meeting.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", meeting.ID)
	}
	return nil
}

func (r *MongoMeetingRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for meeting %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", id)
	}
	return nil
}

func (r *MongoMeetingRepo) SetJoinURL(id, joinURL string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"join_url": joinURL, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update join url for meeting %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", id)
	}
	return nil
}
