package client

import (
	"sync"
	"time"
)

const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyInfo    = "info"
)

type Notification struct {
	ID      int64     `json:"id"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Time    time.Time `json:"time"`
}

// NotificationStore collects transient user-facing messages emitted by the
// other stores.
type NotificationStore struct {
	mu     sync.Mutex
	nextID int64
	list   []Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

func (s *NotificationStore) Add(message, kind string) Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n := Notification{
		ID:      s.nextID,
		Message: message,
		Type:    kind,
		Time:    time.Now(),
	}
	s.list = append(s.list, n)
	return n
}

func (s *NotificationStore) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.list[:0]
	for _, n := range s.list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.list = kept
}

func (s *NotificationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = nil
}

func (s *NotificationStore) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.list))
	copy(out, s.list)
	return out
}

// notify tolerates a nil store so stores can run without a notification sink.
func notify(s *NotificationStore, message, kind string) {
	if s != nil {
		s.Add(message, kind)
	}
}
