package client

import (
	"encoding/json"
	"log"
	"sync"

	"cyber-shop/models"
)

const (
	compareStorageKey = "compareList"

	// MaxCompareItems bounds the comparison list; a fifth add is rejected.
	MaxCompareItems = 4
)

// CompareStore keeps the products queued for side-by-side comparison.
type CompareStore struct {
	mu       sync.Mutex
	storage  Storage
	notifier *NotificationStore
	list     []models.Product
}

func NewCompareStore(storage Storage, notifier *NotificationStore) *CompareStore {
	s := &CompareStore{storage: storage, notifier: notifier}
	if data, ok := storage.Get(compareStorageKey); ok {
		if err := json.Unmarshal(data, &s.list); err != nil {
			log.Println("Failed to load stored compare list:", err)
			s.list = nil
		}
	}
	return s
}

// persist must be called with the lock held.
func (s *CompareStore) persist() {
	data, err := json.Marshal(s.list)
	if err != nil {
		log.Println("Failed to encode compare list:", err)
		return
	}
	if err := s.storage.Set(compareStorageKey, data); err != nil {
		log.Println("Failed to save compare list:", err)
	}
}

// Toggle removes the product when present, appends it otherwise, and returns
// the resulting membership. A full list rejects the add: the list stays
// unchanged, Toggle returns false and a notification is emitted instead of an
// error.
func (s *CompareStore) Toggle(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.list {
		if p.ID == product.ID {
			s.list = append(s.list[:i], s.list[i+1:]...)
			s.persist()
			return false
		}
	}

	if len(s.list) >= MaxCompareItems {
		notify(s.notifier, "You can compare at most 4 products", NotifyError)
		return false
	}

	s.list = append(s.list, product)
	s.persist()
	return true
}

func (s *CompareStore) IsInCompare(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.list {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *CompareStore) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.list))
	copy(out, s.list)
	return out
}

func (s *CompareStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = nil
	s.storage.Remove(compareStorageKey)
}
