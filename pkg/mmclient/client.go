// Package mmclient provides the main entry point for creating multiMATIC API clients
package mmclient

import (
	"fmt"
	"strings"

	"github.com/homeclimate-io/multimatic/internal/client"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// New creates a new multiMATIC API client.
func New(config *multimatic.Config) (multimatic.Manager, error) {
	if config == nil {
		return nil, multimatic.ErrConfigRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, multimatic.ErrCredentialsRequired
	}

	// Normalize the endpoint; empty means the production API
	if config.Endpoint != "" {
		endpoint := strings.TrimSuffix(config.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.Endpoint = endpoint
	}

	manager, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return manager, nil
}

// NewWithCredentials creates a new client against the production API using
// username/password authentication.
func NewWithCredentials(username, password string) (multimatic.Manager, error) {
	return New(&multimatic.Config{
		Username: username,
		Password: password,
	})
}

// NewWithSerial creates a new client with a fixed gateway serial number,
// skipping facility discovery.
func NewWithSerial(username, password, serial string) (multimatic.Manager, error) {
	return New(&multimatic.Config{
		Username: username,
		Password: password,
		Serial:   serial,
	})
}
