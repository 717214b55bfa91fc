package client

import (
	"context"

	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

const facilitiesCacheKey = "facilities"

// GetFacilityDetail returns the facility matching serial, or the primary
// facility when serial is empty. The facility list rarely changes, so the
// raw response is served from the cache when one is configured.
func (m *Manager) GetFacilityDetail(ctx context.Context, serial string) (*multimatic.FacilityDetail, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.FacilityDetail, error) {
		raw, err := m.cachedGet(ctx, facilitiesCacheKey, func(string) string {
			return urls.FacilitiesList()
		})
		if err != nil {
			return nil, err
		}

		detail, err := mapper.FacilityDetail(raw, serial)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return detail, nil
	})
}

// GetGateway returns the gateway type, e.g. "VR920".
func (m *Manager) GetGateway(ctx context.Context) (string, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (string, error) {
		raw, err := m.get(ctx, urls.GatewayType)
		if err != nil {
			return "", err
		}

		gateway, err := mapper.Gateway(raw)
		if err != nil {
			return "", wrongResponse(err, raw)
		}

		return gateway, nil
	})
}

// GetOutdoorTemperature returns the outdoor temperature, or nil when the
// installation has no outdoor sensor.
func (m *Manager) GetOutdoorTemperature(ctx context.Context) (*float64, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*float64, error) {
		raw, err := m.get(ctx, urls.SystemStatus)
		if err != nil {
			return nil, err
		}

		temperature, err := mapper.OutdoorTemperature(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return temperature, nil
	})
}

// GetHvacStatus returns the boiler/gateway health overview, including the
// pending-request sync state.
func (m *Manager) GetHvacStatus(ctx context.Context) (*multimatic.HvacStatus, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.HvacStatus, error) {
		raw, err := m.get(ctx, urls.Hvac)
		if err != nil {
			return nil, err
		}

		status, err := mapper.HvacStatus(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return status, nil
	})
}

func (m *Manager) getSystemControl(ctx context.Context) (*mapper.SystemControl, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*mapper.SystemControl, error) {
		raw, err := m.get(ctx, urls.System)
		if err != nil {
			return nil, err
		}

		control, err := mapper.System(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return control, nil
	})
}

// GetSystem aggregates the full installation state: facility, gateway, the
// system control overview (zones, dhw, ventilation, overrides), rooms, live
// reports and hvac health.
//
// Rooms and live reports are optional equipment. Installations without them
// answer with an error on those endpoints, which degrades to an empty slice
// instead of failing the whole snapshot.
func (m *Manager) GetSystem(ctx context.Context) (*multimatic.System, error) {
	facility, err := m.GetFacilityDetail(ctx, "")
	if err != nil {
		return nil, err
	}

	gateway, err := m.GetGateway(ctx)
	if err != nil {
		return nil, err
	}

	control, err := m.getSystemControl(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := m.GetRooms(ctx)
	if err != nil {
		if !multimatic.IsAPI(err) || multimatic.IsWrongResponse(err) {
			return nil, err
		}

		if m.logger != nil {
			m.logger.Debug("no room data for this installation", map[string]interface{}{"error": err.Error()})
		}

		rooms = nil
	}

	reports, err := m.GetLiveReports(ctx)
	if err != nil {
		if !multimatic.IsAPI(err) || multimatic.IsWrongResponse(err) {
			return nil, err
		}

		if m.logger != nil {
			m.logger.Debug("no live report data for this installation", map[string]interface{}{"error": err.Error()})
		}

		reports = nil
	}

	hvac, err := m.GetHvacStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &multimatic.System{
		Facility:           facility,
		Gateway:            gateway,
		Zones:              control.Zones,
		Rooms:              rooms,
		Dhw:                control.Dhw,
		Ventilation:        control.Ventilation,
		QuickMode:          control.QuickMode,
		HolidayMode:        control.HolidayMode,
		OutdoorTemperature: control.OutdoorTemperature,
		HvacStatus:         hvac,
		LiveReports:        reports,
	}, nil
}
