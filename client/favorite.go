package client

import (
	"encoding/json"
	"log"
	"sync"

	"cyber-shop/models"
)

const favoriteStorageKey = "favoriteList"

// FavoriteStore keeps a deduplicated list of favorited product snapshots.
type FavoriteStore struct {
	mu      sync.Mutex
	storage Storage
	list    []models.Product
}

func NewFavoriteStore(storage Storage) *FavoriteStore {
	s := &FavoriteStore{storage: storage}
	if data, ok := storage.Get(favoriteStorageKey); ok {
		if err := json.Unmarshal(data, &s.list); err != nil {
			log.Println("Failed to load stored favorites:", err)
			s.list = nil
		}
	}
	return s
}

// persist must be called with the lock held.
func (s *FavoriteStore) persist() {
	data, err := json.Marshal(s.list)
	if err != nil {
		log.Println("Failed to encode favorites:", err)
		return
	}
	if err := s.storage.Set(favoriteStorageKey, data); err != nil {
		log.Println("Failed to save favorites:", err)
	}
}

// Toggle removes the product when present, appends it otherwise, and returns
// the resulting membership.
func (s *FavoriteStore) Toggle(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.list {
		if p.ID == product.ID {
			s.list = append(s.list[:i], s.list[i+1:]...)
			s.persist()
			return false
		}
	}

	s.list = append(s.list, product)
	s.persist()
	return true
}

func (s *FavoriteStore) IsFavorite(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.list {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *FavoriteStore) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.list))
	copy(out, s.list)
	return out
}

func (s *FavoriteStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = nil
	s.storage.Remove(favoriteStorageKey)
}
