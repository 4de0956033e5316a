package ongRepo

import (
	"context"
	"time"

	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new ONG and returns its ID.
func (r *mongoOngRepo) Create(ctx context.Context, ong models.Ong) (string, error) {
	if ong.ID == "" {
		ong.ID = uuid.New().String()
	}
	ong.CreatedAt = time.Now()
	ong.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, ong); err != nil {
		return "", err
	}
	return ong.ID, nil
}

// GetByID returns an ONG by ID, or nil when absent.
func (r *mongoOngRepo) GetByID(ctx context.Context, id string) (*models.Ong, error) {
	var ong models.Ong
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ong)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ong, nil
}

// GetByUserID returns the ONG owned by the given user account, or nil.
func (r *mongoOngRepo) GetByUserID(ctx context.Context, userID string) (*models.Ong, error) {
	var ong models.Ong
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&ong)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ong, nil
}

// List returns all ONGs.
func (r *mongoOngRepo) List(ctx context.Context) ([]models.Ong, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ongs []models.Ong
	if err := cursor.All(ctx, &ongs); err != nil {
		return nil, err
	}
	return ongs, nil
}

// Update replaces the stored ONG.
func (r *mongoOngRepo) Update(ctx context.Context, ong models.Ong) error {
	ong.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": ong.ID}, ong)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
