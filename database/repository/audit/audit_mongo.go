package auditRepo

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

// AuditRepository defines methods for audit record access.
type AuditRepository interface {
	Create(record *models.AuditRecord) error
	GetRecent(limit int64) ([]models.AuditRecord, error)
}

// MongoAuditRepo implements AuditRepository using MongoDB.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo creates a new instance of AuditRepository using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	return &MongoAuditRepo{coll: database.Collection("audit_log")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAuditRepo) Create(record *models.AuditRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}
	return nil
}

func (r *MongoAuditRepo) GetRecent(limit int64) ([]models.AuditRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AuditRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode audit records: %w", err)
	}
	return records, nil
}
