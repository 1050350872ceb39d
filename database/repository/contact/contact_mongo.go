package contactRepo

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

// ContactRepository defines methods for contact data access.
type ContactRepository interface {
	GetByID(id string) (*models.Contact, error)
	GetAll() ([]models.Contact, error)
	GetByAccount(accountID string) ([]models.Contact, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id string) error
	Count() (int64, error)
}

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	coll := database.Collection("contacts")
	repo := &MongoContactRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoContactRepo) GetByID(id string) (*models.Contact, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contact models.Contact
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact with id %s: %w", id, err)
	}
	return &contact, nil
}

func (r *MongoContactRepo) GetAll() ([]models.Contact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *MongoContactRepo) GetByAccount(accountID string) ([]models.Contact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts for account %s: %w", accountID, err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *MongoContactRepo) Create(contact *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *MongoContactRepo) Update(contact *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	contact.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": contact.ID}, bson.M{"$set": contact})
	if err != nil {
		return fmt.Errorf("failed to update contact with id %s: %w", contact.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact with id %s not found", contact.ID)
	}
	return nil
}

func (r *MongoContactRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact with id %s not found", id)
	}
	return nil
}

func (r *MongoContactRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return n, nil
}
