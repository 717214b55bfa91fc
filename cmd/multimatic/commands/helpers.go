package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/homeclimate-io/multimatic/pkg/mmclient"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Yes = "yes"
	No  = "no"
)

// createManager builds a manager from the resolved configuration.
func createManager() (multimatic.Manager, error) {
	config := &multimatic.Config{
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		Serial:   viper.GetString("serial"),
		Endpoint: viper.GetString("endpoint"),
		Debug:    viper.GetBool("debug"),
	}

	if config.Username == "" || config.Password == "" {
		return nil, multimatic.ErrCredentialsRequired
	}

	manager, err := mmclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return manager, nil
}

// renderEncoded writes value as JSON or YAML to stdout.
func renderEncoded(format string, value interface{}) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(value)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTemperature(value float64) string {
	return fmt.Sprintf("%.1f°C", value)
}

func formatOptionalTemperature(value *float64) string {
	if value == nil {
		return NotAvailable
	}

	return formatTemperature(*value)
}

func formatBool(value bool) string {
	if value {
		return Yes
	}

	return No
}
