package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/hanikdev/storefront-golang/internal/models"
	"github.com/hanikdev/storefront-golang/internal/store"
)

// CatalogService owns product CRUD. All mutating operations are admin-gated
// at the API layer.
type CatalogService struct {
	Store store.Store
}

// ProductFields is the validated field set for creating or updating a
// product. Image and Discount are optional and default to ""/0.
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Stock       int
	Discount    float64
}

func (f *ProductFields) validate() error {
	if f.Name == "" {
		return validationf("name is required")
	}
	if f.Description == "" {
		return validationf("description is required")
	}
	if f.Price < 0 {
		return validationf("price must not be negative")
	}
	if f.Stock < 0 {
		return validationf("stock must not be negative")
	}
	return nil
}

// clampDiscount keeps the discount inside [0,100] at the input boundary.
func clampDiscount(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}

// List returns the full catalog with effective prices filled in.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.Store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].ApplyDiscount()
	}
	return products, nil
}

func (s *CatalogService) Create(ctx context.Context, f ProductFields) (*models.Product, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &models.Product{
		ID:          uuid.NewString(),
		Name:        f.Name,
		Slug:        slug.Make(f.Name),
		Description: f.Description,
		Price:       f.Price,
		Image:       f.Image,
		Stock:       f.Stock,
		Discount:    clampDiscount(f.Discount),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	p.ApplyDiscount()
	return p, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, f ProductFields) (*models.Product, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	p, err := s.Store.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = f.Name
	p.Slug = slug.Make(f.Name)
	p.Description = f.Description
	p.Price = f.Price
	p.Image = f.Image
	p.Stock = f.Stock
	p.Discount = clampDiscount(f.Discount)
	p.UpdatedAt = time.Now()

	if err := s.Store.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	p.ApplyDiscount()
	return p, nil
}

// Delete removes the product. Orders keep their own snapshots of product
// data, so no referencing check is needed.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.Store.DeleteProduct(ctx, id)
}
