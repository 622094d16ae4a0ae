package client

import (
	"encoding/json"
	"testing"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, name, price, originalPrice string) models.Product {
	p := models.Product{ID: id, Name: name}
	p.Price, _ = decimal.NewFromString(price)
	if originalPrice != "" {
		p.OriginalPrice, _ = decimal.NewFromString(originalPrice)
	}
	return p
}

func TestCartAddMergesSameProduct(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage(), nil)

	cart.Add(product(1, "Widget", "10", ""), 1)
	cart.Add(product(1, "Widget", "10", ""), 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Count)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartAddDefaultsToOne(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage(), nil)

	cart.Add(product(1, "Widget", "10", ""), 0)

	assert.Equal(t, 1, cart.ItemCount(1))
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage(), nil)
	cart.Add(product(1, "Widget", "10", ""), 2)

	cart.SetQuantity(1, 5)
	assert.Equal(t, 5, cart.ItemCount(1))

	cart.SetQuantity(1, 0)
	assert.False(t, cart.IsInCart(1))
}

func TestCartTotals(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage(), nil)
	cart.Add(product(1, "Widget", "10", "15"), 2)
	cart.Add(product(2, "Gadget", "5.50", ""), 1)

	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("25.50")),
		"got %s", cart.TotalPrice())
	// discount: (15-10)*2 for widget, none for gadget
	assert.True(t, cart.TotalDiscount().Equal(decimal.NewFromInt(10)),
		"got %s", cart.TotalDiscount())
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartSelection(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage(), nil)
	cart.Add(product(1, "Widget", "10", ""), 1)
	cart.Add(product(2, "Gadget", "20", ""), 1)

	// new items start selected
	assert.True(t, cart.SelectedTotalPrice().Equal(decimal.NewFromInt(30)))

	cart.ToggleSelected(2)
	assert.True(t, cart.SelectedTotalPrice().Equal(decimal.NewFromInt(10)))
	require.Len(t, cart.SelectedItems(), 1)

	cart.SelectAll(true)
	assert.Len(t, cart.SelectedItems(), 2)

	cart.ToggleSelected(1)
	cart.RemoveSelected()
	require.Len(t, cart.Items(), 1)
	assert.True(t, cart.IsInCart(1))
}

func TestCartPersistsAcrossLoads(t *testing.T) {
	storage := NewMemoryStorage()

	cart := NewCartStore(storage, nil)
	cart.Add(product(1, "Widget", "10", ""), 2)
	first := cart.LastUpdated()
	assert.False(t, first.IsZero())

	reloaded := NewCartStore(storage, nil)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, 2, reloaded.ItemCount(1))
}

func TestCartDiscardsOnVersionMismatch(t *testing.T) {
	storage := NewMemoryStorage()
	stale, _ := json.Marshal(cartEnvelope{
		Version: "0.9",
		Items:   []CartItem{{Product: product(1, "Widget", "10", ""), Count: 1}},
	})
	require.NoError(t, storage.Set(cartStorageKey, stale))

	cart := NewCartStore(storage, nil)

	assert.Empty(t, cart.Items())
	_, ok := storage.Get(cartStorageKey)
	assert.False(t, ok, "stale cart should be removed from storage")
}

func TestCartClear(t *testing.T) {
	storage := NewMemoryStorage()
	cart := NewCartStore(storage, nil)
	cart.Add(product(1, "Widget", "10", ""), 1)

	cart.Clear()

	assert.Empty(t, cart.Items())
	_, ok := storage.Get(cartStorageKey)
	assert.False(t, ok)
}
