package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sheets-commerce/internal/model"
)

func product(id string, price float64) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Price: price}
}

func TestCart_AddItem(t *testing.T) {
	c := New(nil)

	c.AddItem(product("p1", 10), 2)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	c := New(nil)

	c.AddItem(product("p1", 10), 2)
	c.AddItem(product("p1", 10), 3)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, c.ItemCount())
}

func TestCart_AddItem_QuantityBelowOneBecomesOne(t *testing.T) {
	c := New(nil)

	c.AddItem(product("p1", 10), 0)
	c.AddItem(product("p2", 10), -5)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 2)

	c.UpdateQuantity("p1", 7)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 2)
	c.AddItem(product("p2", 20), 1)

	c.UpdateQuantity("p1", 0)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].Product.ID)
}

func TestCart_UpdateQuantity_NegativeRemovesLine(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 2)

	c.UpdateQuantity("p1", -3)

	assert.Empty(t, c.Lines())
}

func TestCart_UpdateQuantity_UnknownProductIsNoOp(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 2)

	c.UpdateQuantity("missing", 5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 1)
	c.AddItem(product("p2", 20), 1)

	c.RemoveItem("p1")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].Product.ID)
}

func TestCart_RemoveItem_AbsentIsNoOp(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 1)

	c.RemoveItem("missing")

	assert.Len(t, c.Lines(), 1)
}

func TestCart_Clear(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 3)
	c.AddItem(product("p2", 20), 1)

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.ItemCount())
}

func TestCart_Total(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 2)
	c.AddItem(product("p2", 5), 1)

	assert.Equal(t, 25.0, c.Total())
}

func TestCart_Total_EmptyCartIsZero(t *testing.T) {
	c := New(nil)
	assert.Zero(t, c.Total())
}

func TestCart_Total_MissingPriceContributesZero(t *testing.T) {
	c := New(nil)
	c.AddItem(model.Product{ID: "free", Name: "No Price"}, 3)
	c.AddItem(product("p1", 10), 1)

	assert.Equal(t, 10.0, c.Total())
}

func TestCart_Snapshot(t *testing.T) {
	c := New(nil)
	c.AddItem(product("p1", 10), 2)
	c.AddItem(product("p2", 5), 1)

	items := c.Snapshot()

	require.Len(t, items, 2)
	assert.Equal(t, model.OrderItem{ProductID: "p1", Name: "Product p1", Price: 10, Quantity: 2}, items[0])
	assert.Equal(t, model.OrderItem{ProductID: "p2", Name: "Product p2", Price: 5, Quantity: 1}, items[1])
}

func TestCart_FileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	c := New(NewFileStorage(path))
	c.AddItem(product("p1", 10), 2)
	c.AddItem(product("p2", 5), 1)

	// A fresh cart over the same file sees the persisted lines.
	restored := New(NewFileStorage(path))
	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, 25.0, restored.Total())
}

func TestCart_FileStorage_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	c := New(NewFileStorage(path))

	assert.Empty(t, c.Lines())
}

func TestCart_LoadDropsInvalidQuantities(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save([]Line{
		{Product: product("p1", 10), Quantity: 2},
		{Product: product("p2", 5), Quantity: 0},
		{Product: product("p3", 5), Quantity: -1},
	}))

	c := New(storage)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
}

func TestCart_LoadFailureStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	c := New(NewFileStorage(path))

	assert.Empty(t, c.Lines())
}

// failingStorage accepts loads but rejects every save.
type failingStorage struct{}

func (failingStorage) Load() ([]Line, error)   { return nil, nil }
func (failingStorage) Save(lines []Line) error { return errors.New("disk full") }

func TestCart_SaveFailureDoesNotLoseState(t *testing.T) {
	c := New(failingStorage{})

	c.AddItem(product("p1", 10), 2)
	c.AddItem(product("p2", 5), 1)

	// The in-memory cart is authoritative even when persistence fails.
	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, 25.0, c.Total())
}

func TestCart_MemoryStorageRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	c := New(storage)
	c.AddItem(product("p1", 10), 2)
	c.RemoveItem("p1")
	c.AddItem(product("p2", 5), 4)

	restored := New(storage)
	lines := restored.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].Product.ID)
	assert.Equal(t, 4, lines[0].Quantity)
}
