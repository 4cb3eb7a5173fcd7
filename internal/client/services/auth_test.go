package services

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/api"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/session"
	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

func setup(t *testing.T, handler http.Handler) (AuthService, *session.Store, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler.ServeHTTP(w, r)
	})
	srv := httptest.NewServer(counting)
	t.Cleanup(srv.Close)

	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	client, err := api.New(srv.URL, 5*time.Second, log)
	require.NoError(t, err)

	store := session.NewStore(filepath.Join(t.TempDir(), "auth.json"), log)
	return NewAuthService(client, store), store, &calls
}

func TestLogin_Success(t *testing.T) {
	svc, store, _ := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok","user":{"id":7,"fullName":"Alice","isAdmin":false}}`))
	}))

	id, err := svc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, int64(7), id.ID)

	require.True(t, store.IsLoggedIn())
	require.Equal(t, "tok", store.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, store, _ := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.False(t, store.IsLoggedIn())
}

func TestLogin_EmptyFieldsSkipNetwork(t *testing.T) {
	svc, _, calls := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	require.ErrorIs(t, err, common.ErrValidation)

	require.Zero(t, calls.Load())
}

func TestRegister_PasswordMismatchSkipsNetwork(t *testing.T) {
	svc, _, calls := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	err := svc.Register(context.Background(), "Alice", "a@b.c", "pw1", "pw2")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Zero(t, calls.Load())
}

func TestRegister_Success(t *testing.T) {
	svc, _, calls := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/register", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
	}))

	err := svc.Register(context.Background(), "Alice", "a@b.c", "pw", "pw")
	require.NoError(t, err)
	require.Equal(t, int64(1), calls.Load())
}

func TestRegister_ServerErrorSurfaces(t *testing.T) {
	svc, _, _ := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already taken"}`))
	}))

	err := svc.Register(context.Background(), "Alice", "a@b.c", "pw", "pw")
	require.Error(t, err)
	require.Contains(t, err.Error(), "email already taken")
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, store, _ := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok","user":{"id":7}}`))
	}))

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.True(t, store.IsLoggedIn())

	svc.Logout()
	require.False(t, store.IsLoggedIn())

	svc.Logout() // idempotent
	require.False(t, store.IsLoggedIn())
}
