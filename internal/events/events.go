package events

import (
	"context"
	"time"

	"catalog-api/internal/schema"

	"github.com/google/uuid"
)

// EventTypeProductCreated is emitted once a product has been persisted
const EventTypeProductCreated = "PRODUCT_CREATED"

// ProductEvent is the payload written to the product events topic
type ProductEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProductID  int64     `json:"product_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CategoryID int64     `json:"category_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewProductCreated builds a PRODUCT_CREATED event for a stored product
func NewProductCreated(p schema.ProductResponse) ProductEvent {
	return ProductEvent{
		EventID:    uuid.New(),
		EventType:  EventTypeProductCreated,
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		Timestamp:  time.Now().UTC(),
	}
}

// Publisher delivers product events to downstream consumers
type Publisher interface {
	PublishProductEvent(ctx context.Context, event ProductEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishProductEvent(context.Context, ProductEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
