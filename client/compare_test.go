package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareToggleMembership(t *testing.T) {
	compare := NewCompareStore(NewMemoryStorage(), nil)
	p := product(1, "Widget", "10", "")

	assert.True(t, compare.Toggle(p))
	assert.True(t, compare.IsInCompare(1))

	assert.False(t, compare.Toggle(p))
	assert.False(t, compare.IsInCompare(1))
	assert.Empty(t, compare.List())
}

func TestCompareRejectsFifthProduct(t *testing.T) {
	compare := NewCompareStore(NewMemoryStorage(), nil)
	for i := 1; i <= MaxCompareItems; i++ {
		require.True(t, compare.Toggle(product(i, "Item", "10", "")))
	}

	added := compare.Toggle(product(5, "One too many", "10", ""))

	assert.False(t, added)
	assert.False(t, compare.IsInCompare(5))
	assert.Len(t, compare.List(), MaxCompareItems)
}

func TestCompareFullListStillAllowsRemoval(t *testing.T) {
	compare := NewCompareStore(NewMemoryStorage(), nil)
	for i := 1; i <= MaxCompareItems; i++ {
		compare.Toggle(product(i, "Item", "10", ""))
	}

	compare.Toggle(product(2, "Item", "10", ""))

	assert.False(t, compare.IsInCompare(2))
	assert.Len(t, compare.List(), MaxCompareItems-1)
}

func TestComparePersistsAcrossLoads(t *testing.T) {
	storage := NewMemoryStorage()
	compare := NewCompareStore(storage, nil)
	compare.Toggle(product(1, "Widget", "10", ""))

	reloaded := NewCompareStore(storage, nil)
	assert.True(t, reloaded.IsInCompare(1))
}

func TestFavoriteToggle(t *testing.T) {
	storage := NewMemoryStorage()
	favorites := NewFavoriteStore(storage)
	p := product(1, "Widget", "10", "")

	assert.True(t, favorites.Toggle(p))
	assert.True(t, favorites.IsFavorite(1))

	reloaded := NewFavoriteStore(storage)
	assert.True(t, reloaded.IsFavorite(1))

	assert.False(t, reloaded.Toggle(p))
	assert.False(t, reloaded.IsFavorite(1))
}

func TestFavoriteClearRemovesStoredList(t *testing.T) {
	storage := NewMemoryStorage()
	favorites := NewFavoriteStore(storage)
	favorites.Toggle(product(1, "Widget", "10", ""))

	favorites.Clear()

	assert.Empty(t, favorites.List())
	_, ok := storage.Get(favoriteStorageKey)
	assert.False(t, ok)
}
