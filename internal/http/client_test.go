package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	internalhttp "github.com/homeclimate-io/multimatic/internal/http"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/facilities", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"status": "ok"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/facilities",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "ok", result["status"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/facilities", request.URL.Path)
			assert.Equal(t, "details=true", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/facilities",
			Query:  url.Values{"details": []string{"true"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "user", body["username"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		req := &internalhttp.Request{
			Method: "POST",
			Path:   "/account/authentication/v1/token/new",
			Body:   map[string]string{"username": "user"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-integration", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, internalhttp.WithUserAgent("my-integration"))

		_, err := client.Get(context.Background(), "/facilities", nil)
		require.NoError(t, err)
	})

	t.Run("error response becomes APIError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"errorMessage": "session expired"}`))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/facilities", nil)
		require.Error(t, err)

		apiErr := &multimatic.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "session expired", apiErr.Message)
		assert.True(t, multimatic.IsSessionExpired(err))
	})

	t.Run("error response without message uses status text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/facilities", nil)
		require.Error(t, err)

		apiErr := &multimatic.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Equal(t, http.StatusText(http.StatusConflict), apiErr.Message)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get(ctx, "/facilities", nil)
		require.Error(t, err)
	})
}

func TestClient_Cookies(t *testing.T) {
	t.Parallel()

	var (
		sessions int
		cookies  []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/login":
			sessions++
			http.SetCookie(writer, &http.Cookie{Name: "JSESSIONID", Value: fmt.Sprintf("session-%d", sessions)})
			writer.WriteHeader(http.StatusOK)
		default:
			cookies = nil
			for _, cookie := range request.Cookies() {
				if cookie.Name == "JSESSIONID" {
					cookies = append(cookies, cookie.Value)
				}
			}

			writer.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Post(ctx, "/login", nil)
	require.NoError(t, err)

	_, err = client.Get(ctx, "/facilities", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"session-1"}, cookies, "session cookie should be replayed")

	// Dropping the jar forgets the session
	client.ClearCookies()

	_, err = client.Get(ctx, "/facilities", nil)
	require.NoError(t, err)
	assert.Empty(t, cookies, "session cookie should be gone after ClearCookies")

	// A fresh login carries exactly one new session cookie, not the old
	// one next to it
	_, err = client.Post(ctx, "/login", nil)
	require.NoError(t, err)

	_, err = client.Get(ctx, "/facilities", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"session-2"}, cookies, "only the new session cookie should be sent")
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := internalhttp.NewClient(server.URL,
		internalhttp.WithLogger(logger),
		internalhttp.WithDebug(true),
	)

	_, err := client.Get(context.Background(), "/facilities", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, logger.logs)
}
