package leadRepo

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

// LeadRepository defines methods for lead data access.
type LeadRepository interface {
	GetByID(id string) (*models.Lead, error)
	GetAll() ([]models.Lead, error)
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	Delete(id string) error
	// SetStatus updates only the lead's status field.
	SetStatus(id, status string) error
	// CountByStatus returns the number of leads per status for the dashboard.
	CountByStatus() (map[string]int, error)
}

// MongoLeadRepo implements LeadRepository using MongoDB.
type MongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo creates a new instance of LeadRepository using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	coll := database.Collection("leads")
	repo := &MongoLeadRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLeadRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoLeadRepo) GetByID(id string) (*models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lead with id %s: %w", id, err)
	}
	return &lead, nil
}

func (r *MongoLeadRepo) GetAll() ([]models.Lead, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return leads, nil
}

func (r *MongoLeadRepo) Create(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *MongoLeadRepo) Update(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	lead.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": lead.ID}, bson.M{"$set": lead})
	if err != nil {
		return fmt.Errorf("failed to update lead with id %s: %w", lead.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead with id %s not found", lead.ID)
	}
	return nil
}

func (r *MongoLeadRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lead with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("lead with id %s not found", id)
	}
	return nil
}

func (r *MongoLeadRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for lead %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead with id %s not found", id)
	}
	return nil
}

func (r *MongoLeadRepo) CountByStatus() (map[string]int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate lead statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode lead status counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
