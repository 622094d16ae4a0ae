package client

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
)

const (
	cartStorageKey = "cybershop_cart"
	cartVersion    = "1.0"
)

// CartItem is a product snapshot plus cart bookkeeping. One entry per product
// id; adding an existing product bumps Count instead of inserting a duplicate.
type CartItem struct {
	models.Product
	Count    int       `json:"count"`
	Selected bool      `json:"selected"`
	AddedAt  time.Time `json:"addedAt"`
}

type cartEnvelope struct {
	Version     string     `json:"version"`
	Items       []CartItem `json:"items"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// CartStore holds the cart state and mirrors every mutation to storage under
// a versioned envelope. A stored envelope with a different schema version is
// discarded on load, not migrated.
type CartStore struct {
	mu          sync.Mutex
	storage     Storage
	notifier    *NotificationStore
	items       []CartItem
	lastUpdated time.Time
}

func NewCartStore(storage Storage, notifier *NotificationStore) *CartStore {
	s := &CartStore{storage: storage, notifier: notifier}
	s.load()
	return s
}

func (s *CartStore) load() {
	data, ok := s.storage.Get(cartStorageKey)
	if !ok {
		return
	}

	var envelope cartEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		log.Println("Failed to load stored cart:", err)
		return
	}
	if envelope.Version != cartVersion {
		log.Printf("Stored cart version %q does not match %q, discarding", envelope.Version, cartVersion)
		s.storage.Remove(cartStorageKey)
		return
	}
	s.items = envelope.Items
	s.lastUpdated = envelope.LastUpdated
}

// persist must be called with the lock held.
func (s *CartStore) persist() {
	s.lastUpdated = time.Now()
	data, err := json.Marshal(cartEnvelope{
		Version:     cartVersion,
		Items:       s.items,
		LastUpdated: s.lastUpdated,
	})
	if err != nil {
		log.Println("Failed to encode cart:", err)
		return
	}
	if err := s.storage.Set(cartStorageKey, data); err != nil {
		log.Println("Failed to save cart:", err)
	}
}

func (s *CartStore) find(productID int) *CartItem {
	for i := range s.items {
		if s.items[i].ID == productID {
			return &s.items[i]
		}
	}
	return nil
}

// Add merges count into an existing entry or inserts a new selected one.
func (s *CartStore) Add(product models.Product, count int) {
	if count < 1 {
		count = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(product.ID); item != nil {
		item.Count += count
		item.AddedAt = time.Now()
		notify(s.notifier, fmt.Sprintf("Updated quantity for %s", item.Name), NotifySuccess)
	} else {
		s.items = append(s.items, CartItem{
			Product:  product,
			Count:    count,
			Selected: true,
			AddedAt:  time.Now(),
		})
		notify(s.notifier, fmt.Sprintf("Added %s to cart", product.Name), NotifySuccess)
	}
	s.persist()
}

func (s *CartStore) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartStore) removeLocked(productID int) {
	item := s.find(productID)
	if item == nil {
		return
	}
	name := item.Name

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	notify(s.notifier, fmt.Sprintf("Removed %s from cart", name), NotifySuccess)
	s.persist()
}

// SetQuantity updates an entry's count; a count of zero or less removes it.
func (s *CartStore) SetQuantity(productID, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count <= 0 {
		s.removeLocked(productID)
		return
	}
	if item := s.find(productID); item != nil {
		item.Count = count
		s.persist()
	}
}

func (s *CartStore) ToggleSelected(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(productID); item != nil {
		item.Selected = !item.Selected
		s.persist()
	}
}

func (s *CartStore) SelectAll(selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Selected = selected
	}
	s.persist()
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.lastUpdated = time.Now()
	s.storage.Remove(cartStorageKey)
	notify(s.notifier, "Cart cleared", NotifySuccess)
}

func (s *CartStore) RemoveSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Selected {
			removed++
		} else {
			kept = append(kept, it)
		}
	}
	s.items = kept
	notify(s.notifier, fmt.Sprintf("Removed %d items", removed), NotifySuccess)
	s.persist()
}

func (s *CartStore) IsInCart(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(productID) != nil
}

func (s *CartStore) ItemCount(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(productID); item != nil {
		return item.Count
	}
	return 0
}

func (s *CartStore) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) SelectedItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []CartItem{}
	for _, it := range s.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

func (s *CartStore) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdated
}

// TotalPrice is price x count over all items.
func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, it := range s.items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Count))))
	}
	return sum
}

// SelectedTotalPrice is price x count over selected items only.
func (s *CartStore) SelectedTotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, it := range s.items {
		if it.Selected {
			sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Count))))
		}
	}
	return sum
}

func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Count
	}
	return total
}

// TotalDiscount is (originalPrice - price) x count summed over all items; an
// item without an original price contributes nothing.
func (s *CartStore) TotalDiscount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, it := range s.items {
		original := it.OriginalPrice
		if original.IsZero() {
			original = it.Price
		}
		diff := original.Sub(it.Price).Mul(decimal.NewFromInt(int64(it.Count)))
		sum = sum.Add(diff)
	}
	return sum
}
