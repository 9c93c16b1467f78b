package models

import "time"

// Order statuses, in lifecycle order.
const (
	StatusPending    = "pending"
	StatusVerifying  = "verifying"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

var statusRank = map[string]int{
	StatusPending:    0,
	StatusVerifying:  1,
	StatusProcessing: 2,
	StatusCompleted:  3,
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to the
// next. Transitions are forward-only, one step at a time; setting the
// current status again is permitted as a no-op.
func CanTransition(from, to string) bool {
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr == fr || tr == fr+1
}

// OrderUser is the point-in-time snapshot of the buyer embedded in an order.
type OrderUser struct {
	ID    string `json:"id" db:"-" bson:"id"`
	Name  string `json:"name" db:"-" bson:"name"`
	Email string `json:"email" db:"-" bson:"email"`
}

// OrderItem is one cart line snapshotted into an order. Price is the unit
// price at the time the order was placed; later product edits do not touch it.
type OrderItem struct {
	ProductID string  `json:"productId" db:"-" bson:"productId"`
	Name      string  `json:"name" db:"-" bson:"name"`
	Price     float64 `json:"price" db:"-" bson:"price"`
	Image     string  `json:"image,omitempty" db:"-" bson:"image,omitempty"`
	Quantity  int     `json:"quantity" db:"-" bson:"quantity"`
}

// BankDetails carries the bank-transfer metadata the buyer submits after
// placing an order.
type BankDetails struct {
	AccountName  string `json:"accountName" db:"-" bson:"accountName"`
	BankName     string `json:"bankName,omitempty" db:"-" bson:"bankName,omitempty"`
	SelectedBank string `json:"selectedBank" db:"-" bson:"selectedBank"`
}

// Order is the model for a placed order. Items are serialized under the
// "products" key to match the storefront API contract. Total is the
// client-supplied cart total and is stored as-is.
type Order struct {
	ID          string       `json:"id" db:"id" bson:"_id"`
	UserID      string       `json:"userId" db:"user_id" bson:"userId"`
	User        *OrderUser   `json:"user,omitempty" db:"-" bson:"user,omitempty"`
	Items       []OrderItem  `json:"products" db:"-" bson:"products"`
	Total       float64      `json:"total" db:"total" bson:"total"`
	Status      string       `json:"status" db:"status" bson:"status"`
	BankDetails *BankDetails `json:"bankDetails,omitempty" db:"-" bson:"bankDetails,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}
