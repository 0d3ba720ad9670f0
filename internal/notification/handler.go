// Package notification turns order events into customer email.
package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/sheets-commerce/internal/email"
	"github.com/example/sheets-commerce/internal/order"
)

// Mailer is the slice of the email service the notifier needs.
type Mailer interface {
	SendOrderConfirmation(to, orderID string, total float64, items []email.OrderItem) error
}

// Handler processes order events for sending notifications.
type Handler struct {
	mailer Mailer
}

func NewHandler(mailer Mailer) *Handler {
	return &Handler{mailer: mailer}
}

// HandleEvent processes an event consumed from Kafka.
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var event order.PlacedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	if event.Type != order.EventOrderPlaced {
		return nil
	}
	return h.handleOrderPlaced(event)
}

func (h *Handler) handleOrderPlaced(e order.PlacedEvent) error {
	log.Printf("[Notifier] Processing %s for order %s, user %s", e.Type, e.OrderID, e.UserID)

	if e.Email == "" {
		log.Printf("[Notifier] No email on event for order %s, skipping", e.OrderID)
		return nil
	}

	emailItems := make([]email.OrderItem, len(e.Items))
	for i, item := range e.Items {
		emailItems[i] = email.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if err := h.mailer.SendOrderConfirmation(e.Email, e.OrderID, e.Total, emailItems); err != nil {
		log.Printf("[Notifier] Failed to send email to %s: %v", e.Email, err)
		return err
	}

	log.Printf("[Notifier] Order confirmation email sent to %s for order %s", e.Email, e.OrderID)
	return nil
}
