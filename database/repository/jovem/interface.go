package jovemRepo

import (
	"context"

	"impulso/database"
	"impulso/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// JovemRepository persists jovem profiles and their derived statistics.
type JovemRepository interface {
	Create(ctx context.Context, jovem models.Jovem) (string, error)
	GetByID(ctx context.Context, id string) (*models.Jovem, error)
	List(ctx context.Context, ongID string) ([]models.Jovem, error)
	ListAvailable(ctx context.Context) ([]models.Jovem, error)
	Update(ctx context.Context, jovem models.Jovem) error

	// UpdateStats replaces the whole statistics block in a single write so the
	// four rollup fields never diverge.
	UpdateStats(ctx context.Context, id string, stats models.JovemStats) error

	Delete(ctx context.Context, id string) error
}

type mongoJovemRepo struct {
	coll *mongo.Collection
}

// NewMongoJovemRepo returns a JovemRepository backed by MongoDB.
func NewMongoJovemRepo() JovemRepository {
	return &mongoJovemRepo{coll: database.DB().Collection("jovens")}
}
