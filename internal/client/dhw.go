package client

import (
	"context"

	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/payloads"
	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// GetDhw returns the domestic hot water state, pairing hot water and
// circulation.
func (m *Manager) GetDhw(ctx context.Context) (*multimatic.Dhw, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.Dhw, error) {
		raw, err := m.get(ctx, urls.Dhws)
		if err != nil {
			return nil, err
		}

		dhw, err := mapper.Dhw(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return dhw, nil
	})
}

// GetHotWater returns the hot water component.
func (m *Manager) GetHotWater(ctx context.Context, dhwID string) (*multimatic.HotWater, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.HotWater, error) {
		raw, err := m.get(ctx, func(serial string) string {
			return urls.HotWater(serial, dhwID)
		})
		if err != nil {
			return nil, err
		}

		hotWater, err := mapper.HotWater(raw, dhwID)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return hotWater, nil
	})
}

// GetCirculation returns the circulation component.
func (m *Manager) GetCirculation(ctx context.Context, dhwID string) (*multimatic.Circulation, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.Circulation, error) {
		raw, err := m.get(ctx, func(serial string) string {
			return urls.Circulation(serial, dhwID)
		})
		if err != nil {
			return nil, err
		}

		circulation, err := mapper.Circulation(raw, dhwID)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return circulation, nil
	})
}

// SetHotWaterOperatingMode switches the hot water operating mode. An
// unknown mode or a missing dhw id is skipped without a request.
func (m *Manager) SetHotWaterOperatingMode(ctx context.Context, dhwID string, mode multimatic.OperatingMode) error {
	if dhwID == "" || !multimatic.SupportsMode(multimatic.HotWaterModes, mode) {
		return m.skipWrite("skipping hot water operating mode write", map[string]interface{}{
			"dhw":  dhwID,
			"mode": string(mode),
		})
	}

	return m.put(ctx, func(serial string) string {
		return urls.HotWaterOperatingMode(serial, dhwID)
	}, payloads.NewOperationMode(mode))
}

// SetHotWaterSetpointTemperature sets the hot water target temperature,
// rounded to the backend's half-degree grid.
func (m *Manager) SetHotWaterSetpointTemperature(ctx context.Context, dhwID string, temperature float64) error {
	if dhwID == "" {
		return m.skipWrite("skipping hot water setpoint write", map[string]interface{}{"dhw": dhwID})
	}

	return m.put(ctx, func(serial string) string {
		return urls.HotWaterTemperatureSetpoint(serial, dhwID)
	}, payloads.NewHotWaterTemperatureSetpoint(temperature))
}
