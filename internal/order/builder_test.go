package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sheets-commerce/internal/infrastructure/store/mocks"
	"github.com/example/sheets-commerce/internal/model"
)

// recordingPublisher captures published events and can fail on demand.
type recordingPublisher struct {
	events []PlacedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, key string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event.(PlacedEvent))
	return nil
}

func testInput() CreateInput {
	return CreateInput{
		UserID:    "user-1",
		UserEmail: "user@example.com",
		Items: []model.OrderItem{
			{ProductID: "p1", Name: "Widget", Price: 10, Quantity: 2},
			{ProductID: "p2", Name: "Gadget", Price: 5, Quantity: 1},
		},
		ShippingAddress: model.Address{Line1: "1 Main St", City: "Springfield"},
		PaymentMethod:   "card",
	}
}

func TestBuilder_Create(t *testing.T) {
	st := mocks.NewMemStore()
	pub := &recordingPublisher{}
	b := NewBuilder(st, pub)

	o, err := b.Create(context.Background(), testInput())

	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "user-1", o.UserID)
	assert.Equal(t, 25.0, o.Total)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.Equal(t, model.PaymentStatusPending, o.PaymentStatus)

	stored, err := st.GetOrderForUser(context.Background(), o.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, o.Total, stored.Total)
}

func TestBuilder_Create_TotalFrozenAgainstPriceChanges(t *testing.T) {
	st := mocks.NewMemStore()
	b := NewBuilder(st, nil)

	in := testInput()
	o, err := b.Create(context.Background(), in)
	require.NoError(t, err)

	// A later catalog price change must not touch the stored total.
	in.Items[0].Price = 1000

	stored, err := st.GetOrderForUser(context.Background(), o.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.Total)
}

func TestBuilder_Create_EmptyItems(t *testing.T) {
	st := mocks.NewMemStore()
	b := NewBuilder(st, nil)

	in := testInput()
	in.Items = nil

	o, err := b.Create(context.Background(), in)

	assert.ErrorIs(t, err, ErrNoItems)
	assert.Nil(t, o)
	assert.Zero(t, st.OrderCount(), "nothing should be persisted")
}

func TestBuilder_Create_InvalidItems(t *testing.T) {
	tests := []struct {
		name string
		item model.OrderItem
	}{
		{"missing product id", model.OrderItem{Name: "Widget", Price: 10, Quantity: 1}},
		{"zero quantity", model.OrderItem{ProductID: "p1", Price: 10, Quantity: 0}},
		{"negative quantity", model.OrderItem{ProductID: "p1", Price: 10, Quantity: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mocks.NewMemStore()
			b := NewBuilder(st, nil)

			in := testInput()
			in.Items = append(in.Items, tt.item)

			o, err := b.Create(context.Background(), in)

			assert.ErrorIs(t, err, ErrInvalidItem)
			assert.Nil(t, o)
			assert.Zero(t, st.OrderCount())
		})
	}
}

func TestBuilder_Create_BillingDefaultsToShipping(t *testing.T) {
	st := mocks.NewMemStore()
	b := NewBuilder(st, nil)

	o, err := b.Create(context.Background(), testInput())
	require.NoError(t, err)

	assert.Nil(t, o.BillingAddress)
	assert.Equal(t, o.ShippingAddress, o.EffectiveBilling())
}

func TestBuilder_Create_ExplicitBillingKept(t *testing.T) {
	st := mocks.NewMemStore()
	b := NewBuilder(st, nil)

	in := testInput()
	billing := model.Address{Line1: "2 Billing Rd", City: "Shelbyville"}
	in.BillingAddress = &billing

	o, err := b.Create(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, o.BillingAddress)
	assert.Equal(t, billing, o.EffectiveBilling())
}

func TestBuilder_Create_StoreFailure(t *testing.T) {
	st := mocks.NewMemStore()
	st.CreateOrderErr = errors.New("connection refused")
	pub := &recordingPublisher{}
	b := NewBuilder(st, pub)

	o, err := b.Create(context.Background(), testInput())

	assert.Error(t, err)
	assert.Nil(t, o)
	assert.Empty(t, pub.events, "no event without a persisted order")
}

func TestBuilder_Create_PublishesEvent(t *testing.T) {
	st := mocks.NewMemStore()
	pub := &recordingPublisher{}
	b := NewBuilder(st, pub)

	o, err := b.Create(context.Background(), testInput())
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	event := pub.events[0]
	assert.Equal(t, EventOrderPlaced, event.Type)
	assert.Equal(t, o.ID, event.OrderID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "user@example.com", event.Email)
	assert.Equal(t, 25.0, event.Total)
	assert.WithinDuration(t, time.Now(), event.PlacedAt, time.Minute)
}

func TestBuilder_Create_PublishFailureIsNotFatal(t *testing.T) {
	st := mocks.NewMemStore()
	pub := &recordingPublisher{err: errors.New("broker down")}
	b := NewBuilder(st, pub)

	o, err := b.Create(context.Background(), testInput())

	require.NoError(t, err)
	require.NotNil(t, o)

	stored, err := st.GetOrderForUser(context.Background(), o.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, o.ID, stored.ID)
}

func TestBuilder_Create_NilPublisher(t *testing.T) {
	st := mocks.NewMemStore()
	b := NewBuilder(st, nil)

	o, err := b.Create(context.Background(), testInput())

	require.NoError(t, err)
	assert.NotNil(t, o)
}
