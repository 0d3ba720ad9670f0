// Package cart implements the shopping cart ledger: the mutable set of
// (product, quantity) lines owned by one shopper session. The in-memory
// state is authoritative; durable storage is written best-effort after
// every mutation.
package cart

import (
	"log"

	"github.com/example/sheets-commerce/internal/model"
)

// Line pairs a product snapshot with a quantity. The unit price is read
// from the snapshot held in the line, not re-fetched from the catalog.
type Line struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Cart holds at most one line per product id; every line's quantity is a
// positive integer. Not safe for concurrent use: a cart belongs to a
// single session and has exactly one writer.
type Cart struct {
	lines   []Line
	storage Storage
}

// New creates a cart backed by the given storage, loading any previously
// persisted lines. A load failure is logged and the cart starts empty.
func New(storage Storage) *Cart {
	c := &Cart{storage: storage}
	if storage == nil {
		return c
	}
	lines, err := storage.Load()
	if err != nil {
		log.Printf("[Cart] Failed to load cart: %v", err)
		return c
	}
	for _, line := range lines {
		if line.Quantity >= 1 {
			c.lines = append(c.lines, line)
		}
	}
	return c
}

// AddItem adds quantity units of the product, merging into an existing
// line for the same product id. Quantities below 1 are treated as 1.
func (c *Cart) AddItem(product model.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	c.persist()
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity
// of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// RemoveItem deletes the line for the product. Removing an absent product
// is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.lines = nil
	c.persist()
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total returns the sum of price x quantity over current lines. A product
// with no price contributes zero.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of line quantities.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Snapshot freezes the current lines into order items for checkout.
func (c *Cart) Snapshot() []model.OrderItem {
	items := make([]model.OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, model.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
	}
	return items
}

// persist writes the cart to storage. Failures are logged and swallowed;
// the in-memory cart stays the source of truth for the session.
func (c *Cart) persist() {
	if c.storage == nil {
		return
	}
	if err := c.storage.Save(c.lines); err != nil {
		log.Printf("[Cart] Failed to save cart: %v", err)
	}
}
