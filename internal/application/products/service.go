package products

import (
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"strconv"

	"marketplace-backend/internal/application/uploads"
	"marketplace-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service orchestrates validation, photo uploads and the product store.
// Store may be nil when the database was unreachable at startup; every
// operation then fails with ErrStoreUnavailable.
type Service struct {
	Store   Store
	Uploads *uploads.Service
}

// recommendedLimit caps the recommended-items response.
const recommendedLimit = 4

// CreateProductInput carries the raw multipart form values for a create.
// Price arrives as the form string so the service owns the numeric parse.
type CreateProductInput struct {
	Name        string
	Price       string
	Description string
	Contact     string
	Photo       *multipart.FileHeader
}

func (s *Service) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if s.Store == nil {
		return nil, ErrStoreUnavailable
	}
	if in.Price == "" {
		return nil, fmt.Errorf("%w: price is required", ErrValidation)
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	image, err := s.Uploads.SavePhoto(in.Photo)
	if err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}

	return s.Store.Insert(ctx, &models.Product{
		Name:        in.Name,
		Price:       price,
		Description: in.Description,
		Contact:     in.Contact,
		Image:       image,
	})
}

func (s *Service) GetAll(ctx context.Context) ([]models.Product, error) {
	if s.Store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.Store.FindAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if s.Store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.Store.FindByID(ctx, id)
}

// UpdateProductInput carries a partial update: nil pointers mean "leave the
// stored value alone", a non-nil Photo replaces the image path.
type UpdateProductInput struct {
	Name        *string
	Price       *string
	Description *string
	Contact     *string
	Photo       *multipart.FileHeader
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in UpdateProductInput) (*models.Product, error) {
	if s.Store == nil {
		return nil, ErrStoreUnavailable
	}

	updates := bson.M{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		updates["price"] = price
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Contact != nil {
		updates["contact"] = *in.Contact
	}
	if in.Photo != nil {
		image, err := s.Uploads.SavePhoto(in.Photo)
		if err != nil {
			return nil, fmt.Errorf("save photo: %w", err)
		}
		updates["image"] = image
	}

	return s.Store.UpdateByID(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if s.Store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.Store.DeleteByID(ctx, id)
}

// Recommended returns up to recommendedLimit products other than the given
// one, in natural store order. No ranking.
func (s *Service) Recommended(ctx context.Context, exclude primitive.ObjectID) ([]models.Product, error) {
	if s.Store == nil {
		return nil, ErrStoreUnavailable
	}
	all, err := s.Store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Product{}
	for _, p := range all {
		if p.ID == exclude {
			continue
		}
		out = append(out, p)
		if len(out) == recommendedLimit {
			break
		}
	}
	return out, nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price must be a number", ErrValidation)
	}
	return price, nil
}
