package auth_test

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/homeclimate-io/multimatic/internal/auth"
	internalhttp "github.com/homeclimate-io/multimatic/internal/http"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPost struct {
	Path string
	Body interface{}
}

// fakeTransport records every call and serves canned responses per path.
type fakeTransport struct {
	gets         []string
	posts        []recordedPost
	cleared      int
	getResponses map[string]*internalhttp.Response
	getErr       error
	postErr      map[string]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		getResponses: map[string]*internalhttp.Response{},
		postErr:      map[string]error{},
	}
}

func (f *fakeTransport) Get(_ context.Context, path string, _ url.Values) (*internalhttp.Response, error) {
	f.gets = append(f.gets, path)

	if f.getErr != nil {
		return nil, f.getErr
	}

	if resp, ok := f.getResponses[path]; ok {
		return resp, nil
	}

	return &internalhttp.Response{StatusCode: 200, Body: []byte(`{"body": {}}`)}, nil
}

func (f *fakeTransport) Post(_ context.Context, path string, body interface{}) (*internalhttp.Response, error) {
	f.posts = append(f.posts, recordedPost{Path: path, Body: body})

	if err, ok := f.postErr[path]; ok {
		return nil, err
	}

	if path == "/account/authentication/v1/token/new" {
		return &internalhttp.Response{StatusCode: 200, Body: []byte(`{"body": {"authToken": "token-1"}}`)}, nil
	}

	return &internalhttp.Response{StatusCode: 200, Body: []byte(`{"body": {}}`)}, nil
}

func (f *fakeTransport) ClearCookies() {
	f.cleared++
}

func facilitiesResponse(serial string) *internalhttp.Response {
	body := map[string]interface{}{
		"body": map[string]interface{}{
			"facilitiesList": []map[string]interface{}{
				{"serialNumber": serial, "name": "Home"},
			},
		},
	}

	raw, _ := json.Marshal(body)

	return &internalhttp.Response{StatusCode: 200, Body: raw}
}

func TestSessionManager_Login(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")

	err := session.Login(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Authenticated())

	require.Len(t, transport.posts, 2)
	assert.Equal(t, "/account/authentication/v1/token/new", transport.posts[0].Path)
	assert.Equal(t, "/account/authentication/v1/authenticate", transport.posts[1].Path)

	// The one-time token from the first response feeds the second request.
	raw, err := json.Marshal(transport.posts[1].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"smartphoneId": "phone-1", "username": "user", "authToken": "token-1"}`, string(raw))

	raw, err = json.Marshal(transport.posts[0].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"smartphoneId": "phone-1", "username": "user", "password": "pass"}`, string(raw))
}

func TestSessionManager_LoginFailures(t *testing.T) {
	t.Parallel()
	t.Run("token request rejected", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		transport.postErr["/account/authentication/v1/token/new"] = &multimatic.APIError{Status: 401, Message: "invalid credentials"}

		session := auth.NewSessionManager(transport, "user", "bad", "phone-1", "")

		err := session.Login(context.Background())
		require.Error(t, err)
		assert.True(t, multimatic.IsSessionExpired(err))
		assert.False(t, session.Authenticated())
	})

	t.Run("authenticate rejected", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		transport.postErr["/account/authentication/v1/authenticate"] = &multimatic.APIError{Status: 401, Message: "token expired"}

		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")

		err := session.Login(context.Background())
		require.Error(t, err)
		assert.False(t, session.Authenticated())
	})
}

func TestSessionManager_EnsureLoggedIn(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")

	require.NoError(t, session.EnsureLoggedIn(context.Background()))
	require.NoError(t, session.EnsureLoggedIn(context.Background()))
	require.NoError(t, session.EnsureLoggedIn(context.Background()))

	// One login, two posts. Subsequent calls are no-ops.
	assert.Len(t, transport.posts, 2)
}

func TestSessionManager_ResolveSerial(t *testing.T) {
	t.Parallel()
	t.Run("lazy serial is queried once then cached", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		transport.getResponses["/facilities"] = facilitiesResponse("1234567890")

		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")

		serial, err := session.ResolveSerial(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1234567890", serial)

		serial, err = session.ResolveSerial(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1234567890", serial)

		assert.Equal(t, []string{"/facilities"}, transport.gets)
	})

	t.Run("fixed serial never queries", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "fixed-9")

		serial, err := session.ResolveSerial(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fixed-9", serial)
		assert.Empty(t, transport.gets)
		assert.True(t, session.FixedSerial())
	})

	t.Run("facility query failure surfaces", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		transport.getErr = &multimatic.APIError{Status: 502, Message: "bad gateway"}

		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")

		_, err := session.ResolveSerial(context.Background())
		require.Error(t, err)
		assert.True(t, multimatic.IsStatus(err, 502))
		assert.Empty(t, session.Serial())
	})
}

func TestSessionManager_Invalidate(t *testing.T) {
	t.Parallel()
	t.Run("clears cookies, auth flag and lazy serial", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		transport.getResponses["/facilities"] = facilitiesResponse("111")

		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")
		require.NoError(t, session.Login(context.Background()))

		_, err := session.ResolveSerial(context.Background())
		require.NoError(t, err)
		require.Equal(t, "111", session.Serial())

		session.Invalidate()

		assert.Equal(t, 1, transport.cleared)
		assert.False(t, session.Authenticated())
		assert.Empty(t, session.Serial())
	})

	t.Run("fixed serial survives invalidation", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "fixed-9")

		session.Invalidate()

		assert.Equal(t, "fixed-9", session.Serial())
	})

	t.Run("cleared serial is re-resolved from the backend", func(t *testing.T) {
		t.Parallel()

		transport := newFakeTransport()
		transport.getResponses["/facilities"] = facilitiesResponse("111")

		session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")

		serial, err := session.ResolveSerial(context.Background())
		require.NoError(t, err)
		require.Equal(t, "111", serial)

		session.Invalidate()
		transport.getResponses["/facilities"] = facilitiesResponse("123")

		serial, err = session.ResolveSerial(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "123", serial)
		assert.Len(t, transport.gets, 2)
	})
}

func TestSessionManager_Logout(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.getResponses["/facilities"] = facilitiesResponse("111")

	session := auth.NewSessionManager(transport, "user", "pass", "phone-1", "")
	require.NoError(t, session.Login(context.Background()))

	_, err := session.ResolveSerial(context.Background())
	require.NoError(t, err)

	require.NoError(t, session.Logout(context.Background()))

	assert.Equal(t, "/account/authentication/v1/logout", transport.posts[len(transport.posts)-1].Path)
	assert.False(t, session.Authenticated())
	assert.Empty(t, session.Serial())
	assert.Equal(t, 1, transport.cleared)
}
