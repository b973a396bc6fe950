package products

import (
	"context"
	"errors"

	"marketplace-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error kinds surfaced by the store and service. Handlers map these to HTTP
// statuses in one place (statusForError).
var (
	ErrNotFound         = errors.New("Product not found")
	ErrValidation       = errors.New("Product validation failed")
	ErrStoreUnavailable = errors.New("Database not connected")
)

// Store is the persistent product collection. Identifier syntax is validated
// by callers before any method here runs; every method takes an already
// parsed ObjectID.
type Store interface {
	Insert(ctx context.Context, p *models.Product) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// UpdateByID merges the given fields into the existing record and
	// returns the post-update record. An empty update set is a no-op read.
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	// DeleteByID removes the record and returns it as it was before deletion.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}
