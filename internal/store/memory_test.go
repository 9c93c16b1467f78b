package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hanikdev/storefront-golang/internal/models"
)

func newTestUser(email string) *models.User {
	return &models.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
}

func TestMemoryUserEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.CreateUser(ctx, newTestUser("a@example.com")); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	err := m.CreateUser(ctx, newTestUser("A@Example.com"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second CreateUser with same email = %v, want ErrDuplicate", err)
	}

	u, err := m.UserByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if u.Email != "a@example.com" {
		t.Errorf("UserByEmail returned %q", u.Email)
	}
}

func TestMemoryProductCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p := &models.Product{ID: uuid.NewString(), Name: "Stand", Description: "d", Price: 45, Stock: 15, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := m.CreateProduct(ctx, p); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	got, err := m.ProductByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("ProductByID: %v", err)
	}
	// Mutating the returned record must not touch the stored one.
	got.Price = 1
	again, _ := m.ProductByID(ctx, p.ID)
	if again.Price != 45 {
		t.Errorf("stored product mutated through returned pointer: price = %v", again.Price)
	}

	p.Price = 50
	if err := m.UpdateProduct(ctx, p); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if err := m.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, err := m.ProductByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ProductByID after delete = %v, want ErrNotFound", err)
	}
	if err := m.DeleteProduct(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteProduct = %v, want ErrNotFound", err)
	}
}

func TestMemoryOrderSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	items := []models.OrderItem{{ProductID: "p1", Name: "Headphones", Price: 10, Quantity: 2}}
	o := &models.Order{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Items:     items,
		Total:     20,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := m.CreateOrder(ctx, o); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// Mutating the caller's slice after creation must not leak into the store.
	items[0].Price = 999

	got, err := m.OrderByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("OrderByID: %v", err)
	}
	if got.Items[0].Price != 10 {
		t.Errorf("stored order item price = %v, want 10", got.Items[0].Price)
	}
	if got.Total != 20 {
		t.Errorf("total = %v, want 20", got.Total)
	}
}

func TestMemoryOrdersByUser(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for i, userID := range []string{"u1", "u2", "u1", "u3", "u1"} {
		o := &models.Order{
			ID:        uuid.NewString(),
			UserID:    userID,
			Items:     []models.OrderItem{{Name: "x", Price: 1, Quantity: 1}},
			Total:     float64(i),
			Status:    models.StatusPending,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		}
		if err := m.CreateOrder(ctx, o); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	orders, err := m.OrdersByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("OrdersByUser: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders for u1, want 3", len(orders))
	}
	for _, o := range orders {
		if o.UserID != "u1" {
			t.Errorf("order %s belongs to %s", o.ID, o.UserID)
		}
	}

	none, err := m.OrdersByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("OrdersByUser(nobody): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d orders for unknown user, want 0", len(none))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := Seed(ctx, m); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(ctx, m); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	products, err := m.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 3 {
		t.Errorf("got %d products after double seed, want 3", len(products))
	}
	admin, err := m.UserByEmail(ctx, SeedAdminEmail)
	if err != nil {
		t.Fatalf("UserByEmail(admin): %v", err)
	}
	if !admin.IsAdmin {
		t.Error("seeded admin is not an admin")
	}
}
