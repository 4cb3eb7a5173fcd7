package session

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

// timeNow is a test seam so expiry checks can run against a fixed clock.
var timeNow = time.Now

// Store is the single source of truth for "who is logged in", durable
// across restarts via one JSON file entry.
//
// Login and Logout are synchronous with respect to in-memory state;
// persistence is best-effort (a storage write failure does not roll back
// the in-memory change, it is only logged).
type Store struct {
	mu   sync.RWMutex
	path string
	log  logging.Logger
	sess *Session
}

// NewStore constructs a Store persisting to the given file path.
func NewStore(path string, log logging.Logger) *Store {
	return &Store{path: path, log: log}
}

// Restore attempts to read a previously saved session from the store's file.
// Absent or malformed data is treated as "no session", never as an error.
// A token that parses as a JWT with an expiry in the past is dropped as well;
// tokens that are not JWTs stay opaque and are kept.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn(context.Background(), "ignoring malformed session file", "path", s.path)
		return
	}
	// partial sessions are as good as none
	if sess.Token == "" || sess.Identity.ID == 0 {
		return
	}
	if tokenExpired(sess.Token) {
		s.log.Info(context.Background(), "persisted session expired", "user_id", sess.Identity.ID)
		return
	}

	s.sess = &sess
}

// Login sets the in-memory session and writes it to the session file so a
// later Restore reproduces it.
func (s *Store) Login(identity Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = &Session{Identity: identity, Token: token}

	data, err := json.Marshal(s.sess)
	if err == nil {
		err = os.WriteFile(s.path, data, 0o600)
	}
	if err != nil {
		s.log.Warn(context.Background(), "could not persist session", "error", err)
	}
}

// Logout clears the in-memory session and erases the persisted copy.
// Calling it with no active session is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return
	}
	s.sess = nil

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn(context.Background(), "could not erase persisted session", "error", err)
	}
}

// Current returns the active identity and token. ok is false when nobody is
// logged in, in which case both other values are zero.
func (s *Store) Current() (identity Identity, token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sess == nil {
		return Identity{}, "", false
	}
	return s.sess.Identity, s.sess.Token, true
}

// Token returns the active bearer token, or "" when logged out.
func (s *Store) Token() string {
	_, token, _ := s.Current()
	return token
}

// IsLoggedIn reports whether a session is active.
func (s *Store) IsLoggedIn() bool {
	_, _, ok := s.Current()
	return ok
}

// tokenExpired reports whether token is a JWT whose exp claim lies in the
// past. The signature is deliberately not verified: the client has no key
// material, and the check only avoids restoring a session the server would
// reject anyway. Opaque (non-JWT) tokens are never considered expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(timeNow())
}
