package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/example/sheets-commerce/internal/api/middleware"
	"github.com/example/sheets-commerce/internal/infrastructure/store"
	"github.com/example/sheets-commerce/internal/model"
	"github.com/example/sheets-commerce/internal/order"
)

// OrderHandlers serves checkout and order history. All routes require
// authentication; users only ever see their own orders.
type OrderHandlers struct {
	builder *order.Builder
	orders  store.OrderStore
}

func NewOrderHandlers(builder *order.Builder, orders store.OrderStore) *OrderHandlers {
	return &OrderHandlers{
		builder: builder,
		orders:  orders,
	}
}

// CreateOrderRequest is the checkout payload: the cart snapshot plus
// addresses and payment method. A missing billing address means "same as
// shipping".
type CreateOrderRequest struct {
	Items           []model.OrderItem `json:"items"`
	ShippingAddress model.Address     `json:"shippingAddress"`
	BillingAddress  *model.Address    `json:"billingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
}

func (h *OrderHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.builder.Create(r.Context(), order.CreateInput{
		UserID:          claims.UserID,
		UserEmail:       claims.Email,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, order.ErrNoItems) {
			respondMessage(w, http.StatusBadRequest, "Items are required")
			return
		}
		if errors.Is(err, order.ErrInvalidItem) {
			respondMessage(w, http.StatusBadRequest, "Order items must have a product and a positive quantity")
			return
		}
		log.Printf("[API] Failed to create order: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, o)
}

func (h *OrderHandlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	orders, err := h.orders.ListOrdersByUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "Order not found")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := extractPathParam(r.URL.Path, "/api/orders/")

	o, err := h.orders.GetOrderForUser(r.Context(), id, userID)
	if err != nil {
		respondStoreError(w, err, "Order not found")
		return
	}
	respondJSON(w, http.StatusOK, o)
}
