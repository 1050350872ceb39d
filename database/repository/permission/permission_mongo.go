package permissionRepo

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

// PermissionRepository defines methods for permission record access.
// Records are keyed by route; routes without a record are open to all roles.
type PermissionRepository interface {
	GetAll() ([]models.Permission, error)
	GetByRoute(route string) (*models.Permission, error)
	Upsert(perm *models.Permission) error
	Delete(route string) error
}

// MongoPermissionRepo implements PermissionRepository using MongoDB.
type MongoPermissionRepo struct {
	coll *mongo.Collection
}

// NewMongoPermissionRepo creates a new instance of PermissionRepository using MongoDB.
func NewMongoPermissionRepo() PermissionRepository {
	coll := database.Collection("permissions")
	repo := &MongoPermissionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPermissionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "route", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPermissionRepo) GetAll() ([]models.Permission, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permissions: %w", err)
	}
	defer cursor.Close(ctx)

	var perms []models.Permission
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}
	return perms, nil
}

func (r *MongoPermissionRepo) GetByRoute(route string) (*models.Permission, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var perm models.Permission
	if err := r.coll.FindOne(ctx, bson.M{"route": route}).Decode(&perm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch permission for route %s: %w", route, err)
	}
	return &perm, nil
}

func (r *MongoPermissionRepo) Upsert(perm *models.Permission) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": perm}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"route": perm.Route}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert permission for route %s: %w", perm.Route, err)
	}
	return nil
}

func (r *MongoPermissionRepo) Delete(route string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"route": route})
	if err != nil {
		return fmt.Errorf("failed to delete permission for route %s: %w", route, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("permission for route %s not found", route)
	}
	return nil
}
