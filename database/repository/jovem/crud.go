package jovemRepo

import (
	"context"
	"errors"
	"time"

	"impulso/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new jovem and returns its ID.
func (r *mongoJovemRepo) Create(ctx context.Context, jovem models.Jovem) (string, error) {
	if jovem.ID == "" {
		jovem.ID = uuid.New().String()
	}
	jovem.CreatedAt = time.Now()
	jovem.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, jovem); err != nil {
		return "", err
	}
	return jovem.ID, nil
}

// GetByID returns a jovem by ID, or nil when absent.
func (r *mongoJovemRepo) GetByID(ctx context.Context, id string) (*models.Jovem, error) {
	var jovem models.Jovem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&jovem)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &jovem, nil
}

// List returns jovens, optionally scoped to an ONG.
func (r *mongoJovemRepo) List(ctx context.Context, ongID string) ([]models.Jovem, error) {
	query := bson.M{}
	if ongID != "" {
		query["ongId"] = ongID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jovens []models.Jovem
	if err := cursor.All(ctx, &jovens); err != nil {
		return nil, err
	}
	return jovens, nil
}

// ListAvailable returns every jovem with the availability flag on.
func (r *mongoJovemRepo) ListAvailable(ctx context.Context) ([]models.Jovem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"availability": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jovens []models.Jovem
	if err := cursor.All(ctx, &jovens); err != nil {
		return nil, err
	}
	return jovens, nil
}

// Update replaces the stored jovem.
func (r *mongoJovemRepo) Update(ctx context.Context, jovem models.Jovem) error {
	jovem.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": jovem.ID}, jovem)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateStats writes the statistics block atomically.
func (r *mongoJovemRepo) UpdateStats(ctx context.Context, id string, stats models.JovemStats) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"stats": stats, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a jovem by ID.
func (r *mongoJovemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("jovem not found")
	}
	return nil
}
