package products

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewProductEvent(t *testing.T) {
	quantity := int64(5)
	created := time.Date(2026, 2, 24, 12, 0, 0, 0, time.UTC)
	p := Product{
		ID:          7,
		Name:        "Widget",
		Description: "A standard widget",
		Price:       decimal.RequireFromString("9.99"),
		Quantity:    &quantity,
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
	}

	before := time.Now().UTC()
	event := NewProductEvent(ActionUpdated, p)
	after := time.Now().UTC()

	if event.ID != p.ID || event.Name != p.Name || !event.Price.Equal(p.Price) {
		t.Fatalf("event does not snapshot the product: %+v", event)
	}
	if !event.CreatedAt.Equal(p.CreatedAt) || !event.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("event timestamps differ from product: %+v", event)
	}

	prefix := ActionUpdated + " at "
	if !strings.HasPrefix(event.Message, prefix) {
		t.Fatalf("want message starting with %q, got %q", prefix, event.Message)
	}

	stamp, err := time.Parse(time.RFC3339Nano, strings.TrimPrefix(event.Message, prefix))
	if err != nil {
		t.Fatalf("message time not parseable: %v", err)
	}
	if stamp.Before(before.Truncate(time.Second)) || stamp.After(after.Add(time.Second)) {
		t.Fatalf("message time %v outside construction window %v..%v", stamp, before, after)
	}
}
