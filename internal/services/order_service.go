package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hanikdev/storefront-golang/internal/models"
	"github.com/hanikdev/storefront-golang/internal/store"
)

// OrderService creates orders from cart snapshots and drives them through
// the pending -> verifying -> processing -> completed lifecycle.
type OrderService struct {
	Store store.Store
}

// Create stores a new order in status pending. Items are deep-copied so the
// order is immune to later edits of the caller's slice or of the catalog.
// Total is taken from the request as-is; it is not recomputed from the line
// items.
func (s *OrderService) Create(ctx context.Context, userID string, items []models.OrderItem, total float64, bank *models.BankDetails) (*models.Order, error) {
	if len(items) == 0 {
		return nil, validationf("order must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, validationf("item quantity must be at least 1")
		}
	}
	if total < 0 {
		return nil, validationf("total must not be negative")
	}

	user, err := s.Store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, validationf("unknown user %q", userID)
		}
		return nil, err
	}

	snapshot := make([]models.OrderItem, len(items))
	copy(snapshot, items)

	buyer := user.Summary()
	now := time.Now()
	order := &models.Order{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		User:        &buyer,
		Items:       snapshot,
		Total:       total,
		Status:      models.StatusPending,
		BankDetails: bank,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return s.Store.OrderByID(ctx, id)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.Store.ListOrders(ctx)
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Store.OrdersByUser(ctx, userID)
}

// Update applies a partial update: only the provided fields change. A status
// change must be a legal forward transition; attaching bank details together
// with status verifying is how a buyer confirms a transfer.
func (s *OrderService) Update(ctx context.Context, id string, status *string, bank *models.BankDetails) (*models.Order, error) {
	order, err := s.Store.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != nil {
		if !models.ValidStatus(*status) {
			return nil, validationf("unknown status %q", *status)
		}
		if !models.CanTransition(order.Status, *status) {
			return nil, ErrInvalidTransition
		}
		order.Status = *status
	}
	if bank != nil {
		order.BankDetails = bank
	}
	order.UpdatedAt = time.Now()

	if err := s.Store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus is the admin path for advancing an order.
func (s *OrderService) SetStatus(ctx context.Context, id, status string) (*models.Order, error) {
	return s.Update(ctx, id, &status, nil)
}

// Delete removes the order unconditionally. The convention that only
// completed orders get deleted lives in the admin UI, not here.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.Store.DeleteOrder(ctx, id)
}
