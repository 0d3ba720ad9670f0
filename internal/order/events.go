package order

import (
	"time"

	"github.com/example/sheets-commerce/internal/model"
)

// EventOrderPlaced is emitted once per successfully persisted order.
const EventOrderPlaced = "order.placed"

// PlacedEvent is the wire payload for EventOrderPlaced. It carries the
// frozen items and the buyer's email so consumers need no store lookup.
type PlacedEvent struct {
	Type     string            `json:"type"`
	OrderID  string            `json:"order_id"`
	UserID   string            `json:"user_id"`
	Email    string            `json:"email"`
	Items    []model.OrderItem `json:"items"`
	Total    float64           `json:"total"`
	PlacedAt time.Time         `json:"placed_at"`
}
