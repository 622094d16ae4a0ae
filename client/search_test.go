package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHistoryMovesRepeatToFront(t *testing.T) {
	search := NewSearchStore()
	search.AddHistory("phone")
	search.AddHistory("laptop")
	search.AddHistory("phone")

	assert.Equal(t, []string{"phone", "laptop"}, search.History())
}

func TestSearchHistoryIgnoresEmptyKeyword(t *testing.T) {
	search := NewSearchStore()
	search.AddHistory("")

	assert.Empty(t, search.History())
}

func TestSearchHistoryIsCapped(t *testing.T) {
	search := NewSearchStore()
	for i := 0; i < maxSearchHistory+5; i++ {
		search.AddHistory(fmt.Sprintf("keyword-%d", i))
	}

	history := search.History()
	require.Len(t, history, maxSearchHistory)
	assert.Equal(t, fmt.Sprintf("keyword-%d", maxSearchHistory+4), history[0])
}

func TestSearchClearHistoryKeepsHotSearches(t *testing.T) {
	search := NewSearchStore()
	search.AddHistory("phone")

	search.ClearHistory()

	assert.Empty(t, search.History())
	assert.NotEmpty(t, search.HotSearches())
}

func TestViewHistoryMovesRepeatToFront(t *testing.T) {
	history := NewHistoryStore()
	history.Add(product(1, "Widget", "10", ""))
	history.Add(product(2, "Gadget", "20", ""))
	history.Add(product(1, "Widget", "10", ""))

	list := history.List()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
}

func TestViewHistoryIsCapped(t *testing.T) {
	history := NewHistoryStore()
	for i := 1; i <= maxViewHistory+3; i++ {
		history.Add(product(i, "Item", "10", ""))
	}

	list := history.List()
	require.Len(t, list, maxViewHistory)
	assert.Equal(t, maxViewHistory+3, list[0].ID)
}

func TestViewHistoryRemove(t *testing.T) {
	history := NewHistoryStore()
	history.Add(product(1, "Widget", "10", ""))
	history.Add(product(2, "Gadget", "20", ""))

	history.Remove(1)

	list := history.List()
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)

	history.Clear()
	assert.Empty(t, history.List())
}
