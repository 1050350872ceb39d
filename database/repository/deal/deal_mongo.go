package dealRepo

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

// DealRepository defines methods for deal data access.
type DealRepository interface {
	GetByID(id string) (*models.Deal, error)
	GetAll() ([]models.Deal, error)
	Create(deal *models.Deal) error
	Update(deal *models.Deal) error
	Delete(id string) error
	// SetStage moves a deal to another pipeline stage.
	SetStage(id, stage string) error
	// StageSummary aggregates count and total value per pipeline stage.
	StageSummary() ([]models.DealStageSummary, error)
}

// MongoDealRepo implements DealRepository using MongoDB.
type MongoDealRepo struct {
	coll *mongo.Collection
}

// NewMongoDealRepo creates a new instance of DealRepository using MongoDB.
func NewMongoDealRepo() DealRepository {
	coll := database.Collection("deals")
	repo := &MongoDealRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDealRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stage", Value: 1}}},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoDealRepo) GetByID(id string) (*models.Deal, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var deal models.Deal
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&deal); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch deal with id %s: %w", id, err)
	}
	return &deal, nil
}

func (r *MongoDealRepo) GetAll() ([]models.Deal, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deals: %w", err)
	}
	defer cursor.Close(ctx)

	var deals []models.Deal
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, fmt.Errorf("failed to decode deals: %w", err)
	}
	return deals, nil
}

func (r *MongoDealRepo) Create(deal *models.Deal) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	deal.CreatedAt = now
	deal.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, deal); err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	return nil
}

func (r *MongoDealRepo) Update(deal *models.Deal) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	deal.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": deal.ID}, bson.M{"$set": deal})
	if err != nil {
		return fmt.Errorf("failed to update deal with id %s: %w", deal.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("deal with id %s not found", deal.ID)
	}
	return nil
}

func (r *MongoDealRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete deal with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("deal with id %s not found", id)
	}
	return nil
}

func (r *MongoDealRepo) SetStage(id, stage string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"stage": stage, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update stage for deal %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("deal with id %s not found", id)
	}
	return nil
}

func (r *MongoDealRepo) StageSummary() ([]models.DealStageSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$stage",
			"count": bson.M{"$sum": 1},
			"value": bson.M{"$sum": "$value"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate deal stages: %w", err)
	}
	defer cursor.Close(ctx)

	var summary []models.DealStageSummary
	if err := cursor.All(ctx, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode deal stage summary: %w", err)
	}
	return summary, nil
}
