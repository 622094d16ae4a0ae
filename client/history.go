package client

import (
	"sync"
	"time"

	"cyber-shop/models"
)

// maxViewHistory bounds the remembered browsing history.
const maxViewHistory = 20

type ViewedProduct struct {
	models.Product
	ViewTime time.Time `json:"viewTime"`
}

// HistoryStore keeps recently viewed products, most recent first.
type HistoryStore struct {
	mu   sync.Mutex
	list []ViewedProduct
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Add moves an already-seen product to the front rather than duplicating it,
// trimming the list to the cap.
func (s *HistoryStore) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]ViewedProduct, 0, len(s.list)+1)
	kept = append(kept, ViewedProduct{Product: product, ViewTime: time.Now()})
	for _, v := range s.list {
		if v.ID != product.ID {
			kept = append(kept, v)
		}
	}
	if len(kept) > maxViewHistory {
		kept = kept[:maxViewHistory]
	}
	s.list = kept
}

func (s *HistoryStore) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.list[:0]
	for _, v := range s.list {
		if v.ID != productID {
			kept = append(kept, v)
		}
	}
	s.list = kept
}

func (s *HistoryStore) List() []ViewedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ViewedProduct, len(s.list))
	copy(out, s.list)
	return out
}

func (s *HistoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = nil
}
