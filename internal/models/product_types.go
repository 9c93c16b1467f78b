package models

import (
	"time"

	"github.com/hanikdev/storefront-golang/internal/pricing"
)

// Product is the model for a catalog entry.
// EffectivePrice is computed on read and never persisted.
type Product struct {
	ID          string  `json:"id" db:"id" bson:"_id"`
	Name        string  `json:"name" db:"name" bson:"name"`
	Slug        string  `json:"slug,omitempty" db:"slug" bson:"slug,omitempty"`
	Description string  `json:"description" db:"description" bson:"description"`
	Price       float64 `json:"price" db:"price" bson:"price"`
	Image       string  `json:"image,omitempty" db:"image" bson:"image,omitempty"`
	Stock       int     `json:"stock" db:"stock" bson:"stock"`
	Discount    float64 `json:"discount" db:"discount" bson:"discount"`

	EffectivePrice float64 `json:"effectivePrice" db:"-" bson:"-"`

	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}

// ApplyDiscount fills EffectivePrice from the listed price and discount.
func (p *Product) ApplyDiscount() {
	p.EffectivePrice = pricing.EffectivePrice(p.Price, p.Discount)
}
