package client

import (
	"context"
	"sync"

	"cyber-shop/models"
)

const tokenStorageKey = "token"

// SessionStore holds the authentication token and user profile. The session
// counts as authenticated only when both are present. It registers itself as
// the API client's token source so every outgoing request carries the bearer
// credential.
type SessionStore struct {
	mu       sync.RWMutex
	api      *Client
	storage  Storage
	notifier *NotificationStore
	token    string
	profile  *models.User
}

func NewSessionStore(api *Client, storage Storage, notifier *NotificationStore) *SessionStore {
	s := &SessionStore{api: api, storage: storage, notifier: notifier}
	if data, ok := storage.Get(tokenStorageKey); ok {
		s.token = string(data)
	}
	api.SetTokenSource(s.Token)
	return s
}

func (s *SessionStore) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if token != "" {
		if err := s.storage.Set(tokenStorageKey, []byte(token)); err != nil {
			notify(s.notifier, "Failed to persist session", NotifyError)
		}
	} else {
		s.storage.Remove(tokenStorageKey)
	}
}

func (s *SessionStore) Login(ctx context.Context, username, password string) error {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		message := "Login failed"
		if apiErr, ok := err.(*APIError); ok {
			message = apiErr.Message
		}
		notify(s.notifier, message, NotifyError)
		return err
	}

	s.setToken(resp.Token)
	s.mu.Lock()
	user := resp.User
	s.profile = &user
	s.mu.Unlock()

	notify(s.notifier, "Login successful", NotifySuccess)
	return nil
}

// Register creates the account and then logs in with the same credentials,
// as the web frontend does.
func (s *SessionStore) Register(ctx context.Context, req models.RegisterRequest) error {
	if _, err := s.api.Register(ctx, req); err != nil {
		message := "Registration failed"
		if apiErr, ok := err.(*APIError); ok {
			message = apiErr.Message
		}
		notify(s.notifier, message, NotifyError)
		return err
	}

	notify(s.notifier, "Registration successful, logging you in", NotifySuccess)
	return s.Login(ctx, req.Username, req.Password)
}

func (s *SessionStore) Logout() {
	s.setToken("")
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()
	notify(s.notifier, "You have been logged out", NotifyInfo)
}

func (s *SessionStore) UpdateProfile(ctx context.Context, req models.UpdateUserRequest) error {
	s.mu.RLock()
	profile := s.profile
	s.mu.RUnlock()
	if profile == nil {
		notify(s.notifier, "Not logged in", NotifyError)
		return &APIError{StatusCode: 401, Message: "not logged in"}
	}

	user, err := s.api.UpdateUser(ctx, profile.ID, req)
	if err != nil {
		notify(s.notifier, "Profile update failed", NotifyError)
		return err
	}

	s.mu.Lock()
	s.profile = user
	s.mu.Unlock()
	notify(s.notifier, "Profile updated", NotifySuccess)
	return nil
}

func (s *SessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.profile != nil
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionStore) Profile() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}
