// Package services contains application services for the admin console.
// This file defines the authentication service: login, registration and
// logout, orchestrated between the API client and the session store.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/api"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/session"
	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Register: create a new account (the caller logs in separately).
//   - Logout: clear the in-memory and persisted session.
//
// Network methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (session.Identity, error)
	Register(ctx context.Context, fullName, email, password, confirm string) error
	Logout()
}

type authService struct {
	client *api.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client *api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login exchanges credentials for an identity and token, then records both
// in the session store so subsequent restarts reproduce the session.
func (a *authService) Login(ctx context.Context, email, password string) (session.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return session.Identity{}, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	identity, token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return session.Identity{}, err
	}

	a.store.Login(identity, token)
	return identity, nil
}

// Register validates the form client-side (matching passwords, required
// fields) and creates the account on the server. Validation failures never
// reach the network.
func (a *authService) Register(ctx context.Context, fullName, email, password, confirm string) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: full name, email and password are required", common.ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	return a.client.Register(ctx, fullName, email, password)
}

// Logout clears the session; calling it while logged out is a no-op.
func (a *authService) Logout() {
	a.store.Logout()
}
