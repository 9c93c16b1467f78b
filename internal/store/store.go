// Package store defines the persistence interface for the storefront and
// provides in-memory, MySQL, and MongoDB implementations. The service layer
// only ever sees the Store interface, so the same logic runs against the
// in-memory store in tests and a persistent store in production.
package store

import (
	"context"
	"errors"

	"github.com/hanikdev/storefront-golang/internal/models"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("store: record not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint
// (currently only the user email).
var ErrDuplicate = errors.New("store: duplicate record")

// Store is the persistence boundary for users, products, and orders.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, o *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, o *models.Order) error
	DeleteOrder(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
