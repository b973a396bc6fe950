package products

import (
	"context"
	"testing"

	"marketplace-backend/internal/application/uploads"
	"marketplace-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is the minimal Store used for service-level tests.
type memStore struct {
	items []models.Product
}

func (s *memStore) Insert(ctx context.Context, p *models.Product) (*models.Product, error) {
	p.ID = primitive.NewObjectID()
	s.items = append(s.items, *p)
	return p, nil
}

func (s *memStore) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.items, nil
}

func (s *memStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error) {
	return s.FindByID(ctx, id)
}

func (s *memStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.FindByID(ctx, id)
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := &memStore{}
	return &Service{Store: store, Uploads: uploads.NewService(t.TempDir())}, store
}

func TestCreate_MissingPrice(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Create(context.Background(), CreateProductInput{Name: "Desk Lamp"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.items)
}

func TestCreate_NonNumericPrice(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Create(context.Background(), CreateProductInput{Name: "Desk Lamp", Price: "cheap"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.items)
}

func TestCreate_ParsesPrice(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.Create(context.Background(), CreateProductInput{Name: "Desk Lamp", Price: "15.99"})
	require.NoError(t, err)
	assert.Equal(t, 15.99, p.Price)
	assert.Empty(t, p.Image)
}

func TestUpdate_NonNumericPrice(t *testing.T) {
	svc, _ := newTestService(t)
	price := "many"

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), UpdateProductInput{Price: &price})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecommended_ExcludesAndCaps(t *testing.T) {
	svc, _ := newTestService(t)

	var first *models.Product
	for i := 0; i < 6; i++ {
		p, err := svc.Create(context.Background(), CreateProductInput{Name: "Item", Price: "1"})
		require.NoError(t, err)
		if first == nil {
			first = p
		}
	}

	recs, err := svc.Recommended(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Len(t, recs, recommendedLimit)
	for _, r := range recs {
		assert.NotEqual(t, first.ID, r.ID)
	}
}

func TestNilStore(t *testing.T) {
	svc := &Service{Store: nil, Uploads: uploads.NewService(t.TempDir())}

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.Create(context.Background(), CreateProductInput{Name: "x", Price: "1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
