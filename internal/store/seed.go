package store

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hanikdev/storefront-golang/internal/models"
)

// Default admin credentials for a fresh store. Override the password after
// first login in anything resembling production.
const (
	SeedAdminEmail    = "admin@store.com"
	SeedAdminPassword = "admin123"
)

// Seed creates the default admin account and a starter catalog. It is
// idempotent: the admin is skipped if the email is taken, products are
// skipped if the catalog is non-empty.
func Seed(ctx context.Context, s Store) error {
	if _, err := s.UserByEmail(ctx, SeedAdminEmail); errors.Is(err, ErrNotFound) {
		var password models.Password
		if err := password.Set(SeedAdminPassword); err != nil {
			return err
		}
		admin := &models.User{
			ID:           uuid.NewString(),
			Name:         "Admin User",
			Email:        SeedAdminEmail,
			PasswordHash: password.Hash,
			IsAdmin:      true,
			CreatedAt:    time.Now(),
		}
		if err := s.CreateUser(ctx, admin); err != nil {
			return err
		}
		log.Printf("seeded admin account %s", SeedAdminEmail)
	} else if err != nil {
		return err
	}

	existing, err := s.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	samples := []models.Product{
		{
			Name:        "Wireless Bluetooth Headphones",
			Slug:        "wireless-bluetooth-headphones",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Stock:       25,
			Discount:    0,
		},
		{
			Name:        "Smartphone Case - Premium Leather",
			Slug:        "smartphone-case-premium-leather",
			Description: "Handcrafted genuine leather case for iPhone and Samsung phones.",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1603313011108-4c4b0b0b0b0b?w=400",
			Stock:       50,
			Discount:    15,
		},
		{
			Name:        "Laptop Stand - Adjustable",
			Slug:        "laptop-stand-adjustable",
			Description: "Ergonomic aluminum laptop stand with adjustable height.",
			Price:       45.00,
			Image:       "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=400",
			Stock:       15,
			Discount:    0,
		},
	}
	for _, p := range samples {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := s.CreateProduct(ctx, &p); err != nil {
			return err
		}
		now = now.Add(time.Millisecond) // keep catalog ordering stable
	}
	log.Printf("seeded %d sample products", len(samples))
	return nil
}
