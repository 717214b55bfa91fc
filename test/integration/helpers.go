//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Username string
	Password string
	Serial   string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Username: os.Getenv("MULTIMATIC_USERNAME"),
		Password: os.Getenv("MULTIMATIC_PASSWORD"),
		Serial:   os.Getenv("MULTIMATIC_SERIAL"),
		Verbose:  os.Getenv("MULTIMATIC_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no live account is configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Username == "" || config.Password == "" {
		t.Skip("MULTIMATIC_USERNAME/MULTIMATIC_PASSWORD not set, skipping integration test")
	}
}
