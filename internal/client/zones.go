package client

import (
	"context"

	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/payloads"
	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// GetZones returns all heating zones.
func (m *Manager) GetZones(ctx context.Context) ([]multimatic.Zone, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) ([]multimatic.Zone, error) {
		raw, err := m.get(ctx, urls.Zones)
		if err != nil {
			return nil, err
		}

		zones, err := mapper.Zones(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return zones, nil
	})
}

// GetZone returns a single heating zone.
func (m *Manager) GetZone(ctx context.Context, zoneID string) (*multimatic.Zone, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.Zone, error) {
		raw, err := m.get(ctx, func(serial string) string {
			return urls.Zone(serial, zoneID)
		})
		if err != nil {
			return nil, err
		}

		zone, err := mapper.Zone(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return zone, nil
	})
}

// SetZoneHeatingOperatingMode switches a zone's heating mode. An unknown
// mode or a missing zone id is skipped without a request.
func (m *Manager) SetZoneHeatingOperatingMode(ctx context.Context, zoneID string, mode multimatic.OperatingMode) error {
	if zoneID == "" || !multimatic.SupportsMode(multimatic.ZoneHeatingModes, mode) {
		return m.skipWrite("skipping zone operating mode write", map[string]interface{}{
			"zone": zoneID,
			"mode": string(mode),
		})
	}

	return m.put(ctx, func(serial string) string {
		return urls.ZoneHeatingMode(serial, zoneID)
	}, payloads.NewZoneOperatingMode(mode))
}

// SetZoneHeatingSetpointTemperature sets the comfort target temperature of
// a zone. The value is rounded to the backend's half-degree grid.
func (m *Manager) SetZoneHeatingSetpointTemperature(ctx context.Context, zoneID string, temperature float64) error {
	if zoneID == "" {
		return m.skipWrite("skipping zone setpoint write", map[string]interface{}{"zone": zoneID})
	}

	return m.put(ctx, func(serial string) string {
		return urls.ZoneHeatingSetpointTemperature(serial, zoneID)
	}, payloads.NewZoneTemperatureSetpoint(temperature))
}

// SetZoneHeatingSetbackTemperature sets the reduced target temperature of a
// zone.
func (m *Manager) SetZoneHeatingSetbackTemperature(ctx context.Context, zoneID string, temperature float64) error {
	if zoneID == "" {
		return m.skipWrite("skipping zone setback write", map[string]interface{}{"zone": zoneID})
	}

	return m.put(ctx, func(serial string) string {
		return urls.ZoneHeatingSetbackTemperature(serial, zoneID)
	}, payloads.NewZoneTemperatureSetback(temperature))
}

// SetZoneQuickVeto overrides a zone's schedule with a temporary setpoint.
func (m *Manager) SetZoneQuickVeto(ctx context.Context, zoneID string, veto multimatic.QuickVeto) error {
	if zoneID == "" {
		return m.skipWrite("skipping zone quick veto write", map[string]interface{}{"zone": zoneID})
	}

	return m.put(ctx, func(serial string) string {
		return urls.ZoneQuickVeto(serial, zoneID)
	}, payloads.NewZoneQuickVeto(veto))
}

// RemoveZoneQuickVeto removes a zone's quick veto. Removing a veto that is
// not active succeeds.
func (m *Manager) RemoveZoneQuickVeto(ctx context.Context, zoneID string) error {
	if zoneID == "" {
		return m.skipWrite("skipping zone quick veto removal", map[string]interface{}{"zone": zoneID})
	}

	return m.del(ctx, func(serial string) string {
		return urls.ZoneQuickVeto(serial, zoneID)
	})
}
