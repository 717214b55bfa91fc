// Package client implements the multiMATIC manager: it glues the session
// manager, the HTTP transport and the response mappers together and exposes
// the operations of the public Manager interface.
package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/homeclimate-io/multimatic/internal/auth"
	"github.com/homeclimate-io/multimatic/internal/constants"
	internalhttp "github.com/homeclimate-io/multimatic/internal/http"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// Transport is the slice of the HTTP client the manager needs.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error)
	Post(ctx context.Context, path string, body interface{}) (*internalhttp.Response, error)
	Put(ctx context.Context, path string, body interface{}) (*internalhttp.Response, error)
	Delete(ctx context.Context, path string) (*internalhttp.Response, error)
	ClearCookies()
}

// Manager implements multimatic.Manager on top of the mobile API.
type Manager struct {
	transport Transport
	session   *auth.SessionManager
	policy    multimatic.RetryPolicy
	cache     multimatic.Cache
	cacheTTL  time.Duration
	logger    multimatic.Logger
}

// New builds a Manager from the given configuration.
func New(config *multimatic.Config) (*Manager, error) {
	if config == nil {
		return nil, multimatic.ErrConfigRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, multimatic.ErrCredentialsRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	smartphoneID := config.SmartphoneID
	if smartphoneID == "" {
		smartphoneID = constants.DefaultSmartphoneID
	}

	options := []internalhttp.Option{
		internalhttp.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		options = append(options, internalhttp.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		options = append(options, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.TransportRetryMax > 0 {
		waitMin := config.TransportRetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.TransportRetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		options = append(options, internalhttp.WithRetryConfig(config.TransportRetryMax, waitMin, waitMax))
	}

	transport := internalhttp.NewClient(endpoint, options...)
	session := auth.NewSessionManager(transport, config.Username, config.Password, smartphoneID, config.Serial)

	manager := &Manager{
		transport: transport,
		session:   session,
		policy:    readPolicy(config),
		cacheTTL:  constants.DefaultCacheTTL,
		logger:    config.Logger,
	}

	if config.Cache != nil {
		cache, err := multimatic.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		manager.cache = cache

		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			manager.cacheTTL = config.Cache.Options.TTL
		}
	}

	return manager, nil
}

// NewWithTransport builds a Manager over an existing transport. Used by
// tests and by callers that need a custom HTTP stack.
func NewWithTransport(transport Transport, session *auth.SessionManager, policy multimatic.RetryPolicy, logger multimatic.Logger) *Manager {
	return &Manager{
		transport: transport,
		session:   session,
		policy:    policy,
		cacheTTL:  constants.DefaultCacheTTL,
		logger:    logger,
	}
}

func readPolicy(config *multimatic.Config) multimatic.RetryPolicy {
	tries := config.RetryTries
	if tries <= 0 {
		tries = constants.DefaultRetryTries
	}

	backoff := config.RetryBackoff
	if backoff == 0 {
		backoff = constants.DefaultRetryBackoff
	}

	if backoff < 0 {
		backoff = 0
	}

	return multimatic.RetryPolicy{
		NumTries:    tries,
		BackoffBase: backoff,
		OnErrors:    []multimatic.ErrorMatcher{multimatic.IsWrongResponse},
	}
}

// Session returns the session manager backing this Manager.
func (m *Manager) Session() *auth.SessionManager {
	return m.session
}

// Login establishes the session eagerly. Requests establish it lazily, so
// calling Login is optional.
func (m *Manager) Login(ctx context.Context) error {
	return m.session.EnsureLoggedIn(ctx)
}

// Logout terminates the backend session and drops all local session state,
// including the resolved serial and any cached responses.
func (m *Manager) Logout(ctx context.Context) error {
	if m.cache != nil {
		_ = m.cache.Clear(ctx)
	}

	return m.session.Logout(ctx)
}

// attempt runs one authenticated call: ensure the session exists, resolve
// the serial, then invoke the request.
func (m *Manager) attempt(ctx context.Context, call func(serial string) ([]byte, error)) ([]byte, error) {
	if err := m.session.EnsureLoggedIn(ctx); err != nil {
		return nil, err
	}

	serial, err := m.session.ResolveSerial(ctx)
	if err != nil {
		return nil, err
	}

	return call(serial)
}

// withSerial is the dispatch pipeline. A session expiry anywhere in the
// attempt drops the session state and replays the call exactly once with a
// fresh login and a freshly resolved serial.
func (m *Manager) withSerial(ctx context.Context, call func(serial string) ([]byte, error)) ([]byte, error) {
	body, err := m.attempt(ctx, call)
	if err != nil && multimatic.IsSessionExpired(err) {
		if m.logger != nil {
			m.logger.Debug("session expired, logging in again", nil)
		}

		m.session.Invalidate()

		return m.attempt(ctx, call)
	}

	return body, err
}

func (m *Manager) get(ctx context.Context, build func(serial string) string) ([]byte, error) {
	return m.withSerial(ctx, func(serial string) ([]byte, error) {
		resp, err := m.transport.Get(ctx, build(serial), nil)
		if err != nil {
			return nil, err
		}

		return resp.Body, nil
	})
}

func (m *Manager) put(ctx context.Context, build func(serial string) string, payload interface{}) error {
	_, err := m.withSerial(ctx, func(serial string) ([]byte, error) {
		_, err := m.transport.Put(ctx, build(serial), payload)

		return nil, err
	})

	return err
}

// del issues a DELETE. A 409 conflict means there was nothing to remove,
// which removals treat as success.
func (m *Manager) del(ctx context.Context, build func(serial string) string) error {
	_, err := m.withSerial(ctx, func(serial string) ([]byte, error) {
		_, err := m.transport.Delete(ctx, build(serial))

		return nil, err
	})

	if multimatic.IsNoActiveMode(err) {
		return nil
	}

	return err
}

// cachedGet serves raw from the cache when present, filling it on miss.
func (m *Manager) cachedGet(ctx context.Context, key string, build func(serial string) string) ([]byte, error) {
	if m.cache != nil {
		if entry, err := m.cache.Get(ctx, key); err == nil && entry != nil {
			return entry.Value, nil
		}
	}

	raw, err := m.get(ctx, build)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		_ = m.cache.Set(ctx, key, &multimatic.CacheEntry{
			Value:     raw,
			StoredAt:  time.Now(),
			ExpiresAt: time.Now().Add(m.cacheTTL),
		})
	}

	return raw, nil
}

// readWithRetry wraps a read operation in the manager's retry policy.
// Malformed bodies are retried, API errors surface immediately.
func readWithRetry[T any](ctx context.Context, m *Manager, op func(context.Context) (T, error)) (T, error) {
	return multimatic.WithRetryValue(m.policy, op)(ctx)
}

// wrongResponse classifies a mapping failure of a 2xx response.
func wrongResponse(err error, raw []byte) error {
	return multimatic.NewWrongResponseError(http.StatusOK, err.Error(), string(raw))
}

// skipWrite logs and swallows a write whose arguments cannot produce a
// valid request. No network call is made.
func (m *Manager) skipWrite(reason string, fields map[string]interface{}) error {
	if m.logger != nil {
		m.logger.Debug(reason, fields)
	}

	return nil
}

var _ multimatic.Manager = (*Manager)(nil)
