//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/homeclimate-io/multimatic/pkg/mmclient"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLiveReadPath exercises the read operations against the production API
// with a real account. Writes are deliberately left out: this suite runs
// against somebody's actual heating.
func TestLiveReadPath(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, err := mmclient.New(&multimatic.Config{
		Username: config.Username,
		Password: config.Password,
		Serial:   config.Serial,
		Debug:    config.Verbose,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	require.NoError(t, client.Login(ctx))
	defer func() {
		assert.NoError(t, client.Logout(ctx))
	}()

	t.Run("facility", func(t *testing.T) {
		facility, err := client.GetFacilityDetail(ctx, "")
		require.NoError(t, err)
		assert.NotEmpty(t, facility.SerialNumber)
	})

	t.Run("system snapshot", func(t *testing.T) {
		system, err := client.GetSystem(ctx)
		require.NoError(t, err)
		assert.NotNil(t, system.Facility)
		assert.NotNil(t, system.HvacStatus)
	})

	t.Run("zones", func(t *testing.T) {
		zones, err := client.GetZones(ctx)
		require.NoError(t, err)

		for _, zone := range zones {
			assert.NotEmpty(t, zone.ID)
		}
	})

	t.Run("quick mode absent or readable", func(t *testing.T) {
		_, err := client.GetQuickMode(ctx)
		require.NoError(t, err)
	})

	t.Run("live reports", func(t *testing.T) {
		_, err := client.GetLiveReports(ctx)
		require.NoError(t, err)
	})
}
