package client

import "sync"

// maxSearchHistory bounds the remembered search keywords.
const maxSearchHistory = 10

// SearchStore keeps recent search keywords, most recent first, plus a seed
// list of hot searches.
type SearchStore struct {
	mu          sync.Mutex
	history     []string
	hotSearches []string
}

func NewSearchStore() *SearchStore {
	return &SearchStore{
		hotSearches: []string{
			"phone", "laptop", "headphones", "keyboard",
			"mouse", "monitor", "tablet", "smartwatch",
		},
	}
}

// AddHistory moves an existing keyword to the front rather than duplicating
// it, trimming the list to the cap.
func (s *SearchStore) AddHistory(keyword string) {
	if keyword == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.history)+1)
	kept = append(kept, keyword)
	for _, k := range s.history {
		if k != keyword {
			kept = append(kept, k)
		}
	}
	if len(kept) > maxSearchHistory {
		kept = kept[:maxSearchHistory]
	}
	s.history = kept
}

func (s *SearchStore) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *SearchStore) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *SearchStore) HotSearches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.hotSearches))
	copy(out, s.hotSearches)
	return out
}
