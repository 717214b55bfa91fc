package mmclient_test

import (
	"testing"

	"github.com/homeclimate-io/multimatic/pkg/mmclient"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := mmclient.New(nil)
		require.ErrorIs(t, err, multimatic.ErrConfigRequired)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := mmclient.New(&multimatic.Config{Username: "user"})
		require.ErrorIs(t, err, multimatic.ErrCredentialsRequired)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		manager, err := mmclient.New(&multimatic.Config{
			Username: "user",
			Password: "pass",
		})
		require.NoError(t, err)
		assert.NotNil(t, manager)
	})
}

func TestNew_EndpointNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{name: "trailing slash removed", endpoint: "https://example.com/", expected: "https://example.com"},
		{name: "scheme added", endpoint: "example.com", expected: "https://example.com"},
		{name: "http preserved", endpoint: "http://localhost:8080", expected: "http://localhost:8080"},
		{name: "empty stays empty", endpoint: "", expected: ""},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &multimatic.Config{
				Username: "user",
				Password: "pass",
				Endpoint: testCase.endpoint,
			}

			_, err := mmclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config.Endpoint)
		})
	}
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	manager, err := mmclient.NewWithCredentials("user", "pass")
	require.NoError(t, err)
	assert.NotNil(t, manager)

	_, err = mmclient.NewWithCredentials("", "")
	require.ErrorIs(t, err, multimatic.ErrCredentialsRequired)
}

func TestNewWithSerial(t *testing.T) {
	t.Parallel()

	manager, err := mmclient.NewWithSerial("user", "pass", "1234567890")
	require.NoError(t, err)
	assert.NotNil(t, manager)
}
