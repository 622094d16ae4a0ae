package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyber-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/login":
			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "secret" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "incorrect password"})
				return
			}
			json.NewEncoder(w).Encode(models.LoginResponse{
				Message: "Login success",
				Token:   "test-token",
				User:    models.User{ID: 7, Username: req.Username},
			})
		case "/api/user/register":
			json.NewEncoder(w).Encode(map[string]*models.User{
				"user": {ID: 7, Username: "alice"},
			})
		default:
			// echo the bearer header so tests can assert it was attached
			w.Header().Set("X-Seen-Authorization", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(models.User{ID: 7})
		}
	}))
}

func TestSessionLoginStoresToken(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	storage := NewMemoryStorage()
	session := NewSessionStore(New(srv.URL), storage, nil)

	require.NoError(t, session.Login(context.Background(), "alice", "secret"))

	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, "test-token", session.Token())
	require.NotNil(t, session.Profile())
	assert.Equal(t, "alice", session.Profile().Username)

	stored, ok := storage.Get(tokenStorageKey)
	require.True(t, ok)
	assert.Equal(t, "test-token", string(stored))
}

func TestSessionLoginFailureKeepsLoggedOut(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	storage := NewMemoryStorage()
	session := NewSessionStore(New(srv.URL), storage, nil)

	err := session.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "incorrect password", apiErr.Message)

	assert.False(t, session.IsLoggedIn())
	_, ok := storage.Get(tokenStorageKey)
	assert.False(t, ok)
}

func TestSessionRegisterLogsIn(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	session := NewSessionStore(New(srv.URL), NewMemoryStorage(), nil)

	err := session.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn())
}

func TestSessionAttachesBearerToken(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: 7})
	}))
	defer srv.Close()

	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(tokenStorageKey, []byte("stored-token")))

	api := New(srv.URL)
	NewSessionStore(api, storage, nil)

	_, err := api.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", seen)
}

func TestSessionLogoutClearsState(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	storage := NewMemoryStorage()
	session := NewSessionStore(New(srv.URL), storage, nil)
	require.NoError(t, session.Login(context.Background(), "alice", "secret"))

	session.Logout()

	assert.False(t, session.IsLoggedIn())
	assert.Empty(t, session.Token())
	assert.Nil(t, session.Profile())
	_, ok := storage.Get(tokenStorageKey)
	assert.False(t, ok)
}
