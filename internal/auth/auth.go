// Package auth is the gate between anonymous and authenticated states.
//
// There is no real authentication here by design: passwords are compared in
// plaintext against the registered set and the session is a persisted email
// pointer, mirroring the mock local-storage login of the dashboard.
package auth

import (
	"errors"
	"sync"

	"github.com/gymflow/gymflow-golang/internal/models"
	"github.com/gymflow/gymflow-golang/internal/storage"
	"github.com/gymflow/gymflow-golang/internal/store"
)

// MinPasswordLen is the only strength rule registration enforces.
const MinPasswordLen = 6

var (
	// ErrUnknownEmail means the login email is not in the registered set.
	// Callers surface it as a redirect-to-register prompt, not a hard
	// failure; the session is left untouched.
	ErrUnknownEmail = errors.New("email not registered")

	// ErrInvalidCredentials means the email exists but the password did
	// not match. The session is left untouched.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail means the registration email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrWeakPassword means the registration password is shorter than
	// MinPasswordLen characters.
	ErrWeakPassword = errors.New("password too short")

	// ErrEmptyEmail rejects registration with no email at all. That is
	// the only shape check: any non-empty string is a valid key.
	ErrEmptyEmail = errors.New("empty email")
)

// Gate validates logins and registrations against the record store's user
// set and keeps the single current session, mirrored to durable storage.
type Gate struct {
	store *store.Store
	kv    *storage.KV

	mu      sync.Mutex
	current string // logged-in email, or "" when anonymous
}

// NewGate wires the gate to the user set and the persistence adapter.
func NewGate(s *store.Store, kv *storage.KV) *Gate {
	return &Gate{store: s, kv: kv}
}

// Restore re-establishes a persisted session. When the stored pointer
// resolves to a known user the gate comes up authenticated, skipping login.
func (g *Gate) Restore() {
	email := g.kv.LoadSession()
	if email == "" {
		return
	}
	if _, ok := g.store.FindUser(email); ok {
		g.setCurrent(email)
	}
}

// Login validates the email/password pair.
//
// Unknown email returns ErrUnknownEmail (the UI turns this into a redirect
// to registration). A wrong password returns ErrInvalidCredentials. Both
// leave the session unchanged. On success the session becomes the user and
// the pointer is persisted.
func (g *Gate) Login(email, password string) (models.User, error) {
	user, ok := g.store.FindUser(email)
	if !ok {
		return models.User{}, ErrUnknownEmail
	}
	if user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	g.setCurrent(email)
	if err := g.kv.SaveSession(email); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Register creates the user and behaves as a successful login for it.
//
// The email format is deliberately not validated: any non-empty string is
// accepted as a key provided it is unique. The password must be at least
// MinPasswordLen characters.
func (g *Gate) Register(email, password, academyName string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrEmptyEmail
	}
	if len(password) < MinPasswordLen {
		return models.User{}, ErrWeakPassword
	}

	user := models.User{Email: email, Password: password, AcademyName: academyName}
	if err := g.store.RegisterUser(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	if err := g.kv.SaveUsers(g.store.Users()); err != nil {
		return models.User{}, err
	}

	return g.Login(email, password)
}

// Logout clears the session and the persisted pointer.
func (g *Gate) Logout() error {
	g.setCurrent("")
	return g.kv.ClearSession()
}

// Current returns the authenticated user, when there is one.
func (g *Gate) Current() (models.User, bool) {
	g.mu.Lock()
	email := g.current
	g.mu.Unlock()

	if email == "" {
		return models.User{}, false
	}
	return g.store.FindUser(email)
}

func (g *Gate) setCurrent(email string) {
	g.mu.Lock()
	g.current = email
	g.mu.Unlock()
}
