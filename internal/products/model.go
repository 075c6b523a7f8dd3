package products

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("product not found")
	ErrCacheMiss = errors.New("product not in cache")
)

const (
	EventsQueue = "product-events"

	ActionCreated = "product created"
	ActionUpdated = "product updated"
	ActionDeleted = "product deleted"
)

type Product struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"Widget"`
	Description string          `json:"description" example:"A standard widget"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	Quantity    *int64          `json:"quantity" example:"5"`
	CreatedAt   time.Time       `json:"created_at" example:"2026-02-24T12:00:00Z"`
	UpdatedAt   time.Time       `json:"updated_at" example:"2026-02-24T12:00:00Z"`
}

// ProductEvent is an immutable snapshot of a product taken right after a
// successful store mutation. Message carries the action description plus
// the wall-clock time the event was constructed.
type ProductEvent struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int64          `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Message     string          `json:"message"`
}

func NewProductEvent(action string, p Product) ProductEvent {
	return ProductEvent{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Message:     action + " at " + time.Now().UTC().Format(time.RFC3339Nano),
	}
}
