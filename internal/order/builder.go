// Package order freezes a cart snapshot into an immutable, priced
// purchase record.
package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/example/sheets-commerce/internal/infrastructure/store"
	"github.com/example/sheets-commerce/internal/model"
)

var (
	ErrNoItems     = errors.New("order requires at least one item")
	ErrInvalidItem = errors.New("order items require a product id and a positive quantity")
)

// EventPublisher publishes order events. A nil publisher disables
// notifications without affecting checkout.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Builder creates orders from cart snapshots.
type Builder struct {
	orders    store.OrderStore
	publisher EventPublisher
	now       func() time.Time
}

func NewBuilder(orders store.OrderStore, publisher EventPublisher) *Builder {
	return &Builder{
		orders:    orders,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateInput carries everything needed to freeze a cart into an order.
// A nil BillingAddress means "same as shipping" and is stored as absent
// rather than duplicated.
type CreateInput struct {
	UserID          string
	UserEmail       string
	Items           []model.OrderItem
	ShippingAddress model.Address
	BillingAddress  *model.Address
	PaymentMethod   string
}

// Create validates the snapshot, computes the total from the snapshot's
// unit prices at call time, and persists the order with pending statuses.
// Later catalog price changes never touch the stored total. On a
// persistence failure nothing is left behind for subsequent reads.
func (b *Builder) Create(ctx context.Context, in CreateInput) (*model.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	var total float64
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, ErrInvalidItem
		}
		total += item.Price * float64(item.Quantity)
	}

	now := b.now()
	o := &model.Order{
		ID:              uuid.New().String(),
		UserID:          in.UserID,
		Items:           in.Items,
		Total:           total,
		Status:          model.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := b.orders.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	// The order is committed; notification is best-effort.
	if b.publisher != nil {
		event := PlacedEvent{
			Type:     EventOrderPlaced,
			OrderID:  o.ID,
			UserID:   o.UserID,
			Email:    in.UserEmail,
			Items:    o.Items,
			Total:    o.Total,
			PlacedAt: now,
		}
		if err := b.publisher.Publish(ctx, o.ID, event); err != nil {
			log.Printf("[Order] Failed to publish %s for order %s: %v", EventOrderPlaced, o.ID, err)
		}
	}

	return o, nil
}
