// Package auth owns the authenticated session against the mobile API:
// cookie-based login, logout, and lazy serial-number resolution.
package auth

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	internalhttp "github.com/homeclimate-io/multimatic/internal/http"
	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/urls"
)

// Transport is the slice of the HTTP client the session manager needs.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error)
	Post(ctx context.Context, path string, body interface{}) (*internalhttp.Response, error)
	ClearCookies()
}

type tokenRequest struct {
	SmartphoneID string `json:"smartphoneId"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

type authenticateRequest struct {
	SmartphoneID string `json:"smartphoneId"`
	Username     string `json:"username"`
	AuthToken    string `json:"authToken"`
}

// SessionManager holds the mutable session state: whether the transport
// carries valid session cookies, and the resolved gateway serial number.
// State mutation is mutex-guarded so one manager can be shared across
// goroutines.
type SessionManager struct {
	transport    Transport
	username     string
	password     string
	smartphoneID string

	mu            sync.Mutex
	serial        string
	fixedSerial   bool
	authenticated bool
}

// NewSessionManager creates a session manager. A non-empty serial is fixed:
// it is used for every request and never overwritten by response-derived
// values.
func NewSessionManager(transport Transport, username, password, smartphoneID, serial string) *SessionManager {
	return &SessionManager{
		transport:    transport,
		username:     username,
		password:     password,
		smartphoneID: smartphoneID,
		serial:       serial,
		fixedSerial:  serial != "",
	}
}

// Login performs the two-step cookie login: request a one-time token, then
// authenticate with it. The session cookies end up in the transport's jar.
func (s *SessionManager) Login(ctx context.Context) error {
	tokenResp, err := s.transport.Post(ctx, urls.NewToken(), tokenRequest{
		SmartphoneID: s.smartphoneID,
		Username:     s.username,
		Password:     s.password,
	})
	if err != nil {
		return fmt.Errorf("requesting auth token: %w", err)
	}

	authToken, err := mapper.AuthToken(tokenResp.Body)
	if err != nil {
		return fmt.Errorf("extracting auth token: %w", err)
	}

	_, err = s.transport.Post(ctx, urls.Authenticate(), authenticateRequest{
		SmartphoneID: s.smartphoneID,
		Username:     s.username,
		AuthToken:    authToken,
	})
	if err != nil {
		return fmt.Errorf("authenticating: %w", err)
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	return nil
}

// EnsureLoggedIn logs in when the session is not authenticated yet.
func (s *SessionManager) EnsureLoggedIn(ctx context.Context) error {
	s.mu.Lock()
	authenticated := s.authenticated
	s.mu.Unlock()

	if authenticated {
		return nil
	}

	return s.Login(ctx)
}

// Logout tells the backend to drop the session, then clears local state.
// The cached serial is cleared too unless it was fixed by the caller.
func (s *SessionManager) Logout(ctx context.Context) error {
	_, err := s.transport.Post(ctx, urls.Logout(), nil)

	s.Invalidate()

	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// Invalidate clears the local session state after a detected session loss:
// cookies, the authenticated flag, and the cached serial when not fixed.
func (s *SessionManager) Invalidate() {
	s.transport.ClearCookies()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	if !s.fixedSerial {
		s.serial = ""
	}
}

// ResolveSerial returns the gateway serial. A fixed serial is returned
// unconditionally without any network call. Otherwise the serial cached
// since the last resolution is reused; when empty (first call, or cleared by
// a session loss) the facility list is queried and the primary facility's
// serial is cached.
func (s *SessionManager) ResolveSerial(ctx context.Context) (string, error) {
	s.mu.Lock()
	serial := s.serial
	fixed := s.fixedSerial
	s.mu.Unlock()

	if fixed || serial != "" {
		return serial, nil
	}

	resp, err := s.transport.Get(ctx, urls.FacilitiesList(), nil)
	if err != nil {
		return "", fmt.Errorf("listing facilities: %w", err)
	}

	resolved, err := mapper.SerialNumber(resp.Body)
	if err != nil {
		return "", fmt.Errorf("extracting serial number: %w", err)
	}

	s.mu.Lock()
	// A fixed serial is never overwritten, even if a resolution raced in.
	if !s.fixedSerial {
		s.serial = resolved
	}
	serial = s.serial
	s.mu.Unlock()

	return serial, nil
}

// Serial returns the currently cached serial, which may be empty when not
// yet resolved.
func (s *SessionManager) Serial() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.serial
}

// FixedSerial reports whether the serial was supplied by the caller.
func (s *SessionManager) FixedSerial() bool {
	return s.fixedSerial
}

// Authenticated reports whether a login succeeded since the last
// invalidation.
func (s *SessionManager) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated
}
