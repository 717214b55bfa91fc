package multimatic_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	t.Parallel()

	err := &multimatic.APIError{Status: http.StatusNotFound, Message: "no such zone"}
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no such zone")
}

func TestWrongResponseError(t *testing.T) {
	t.Parallel()

	err := multimatic.NewWrongResponseError(http.StatusOK, "empty body", `{"body": null}`)

	// A wrong response is an API error too
	assert.True(t, multimatic.IsWrongResponse(err))
	assert.True(t, multimatic.IsAPI(err))

	status, ok := multimatic.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)

	// Classification survives wrapping
	wrapped := fmt.Errorf("fetching zones: %w", err)
	assert.True(t, multimatic.IsWrongResponse(wrapped))
	assert.True(t, multimatic.IsAPI(wrapped))
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	status, ok := multimatic.StatusOf(&multimatic.APIError{Status: http.StatusConflict})
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, status)

	_, ok = multimatic.StatusOf(fmt.Errorf("plain error"))
	assert.False(t, ok)

	_, ok = multimatic.StatusOf(nil)
	assert.False(t, ok)
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	sessionExpired := &multimatic.APIError{Status: http.StatusUnauthorized}
	assert.True(t, multimatic.IsSessionExpired(sessionExpired))
	assert.False(t, multimatic.IsSessionExpired(&multimatic.APIError{Status: http.StatusForbidden}))

	noActiveMode := &multimatic.APIError{Status: http.StatusConflict}
	assert.True(t, multimatic.IsNoActiveMode(noActiveMode))
	assert.False(t, multimatic.IsNoActiveMode(sessionExpired))

	assert.True(t, multimatic.IsStatus(noActiveMode, http.StatusConflict))
	assert.False(t, multimatic.IsStatus(noActiveMode, http.StatusNotFound))
}
