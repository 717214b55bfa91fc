package client

import (
	"context"
	"time"

	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/payloads"
	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// GetQuickMode returns the active system quick mode, or "" when none is
// active. The backend answers the latter with a conflict, not an empty
// body.
func (m *Manager) GetQuickMode(ctx context.Context) (multimatic.QuickMode, error) {
	mode, err := readWithRetry(ctx, m, func(ctx context.Context) (multimatic.QuickMode, error) {
		raw, err := m.get(ctx, urls.SystemQuickMode)
		if err != nil {
			return "", err
		}

		mode, err := mapper.QuickModeResult(raw)
		if err != nil {
			return "", wrongResponse(err, raw)
		}

		return mode, nil
	})

	if multimatic.IsNoActiveMode(err) {
		return "", nil
	}

	return mode, err
}

// SetQuickMode activates a system quick mode. An empty mode is skipped
// without a request.
func (m *Manager) SetQuickMode(ctx context.Context, mode multimatic.QuickMode) error {
	if mode == "" {
		return m.skipWrite("skipping quick mode write", nil)
	}

	return m.put(ctx, urls.SystemQuickMode, payloads.NewQuickMode(mode))
}

// RemoveQuickMode deactivates the system quick mode. Removing when none is
// active succeeds; other failures surface.
func (m *Manager) RemoveQuickMode(ctx context.Context) error {
	return m.del(ctx, urls.SystemQuickMode)
}

// GetHolidayMode returns the holiday mode configuration.
func (m *Manager) GetHolidayMode(ctx context.Context) (*multimatic.HolidayMode, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.HolidayMode, error) {
		raw, err := m.get(ctx, urls.SystemHolidayMode)
		if err != nil {
			return nil, err
		}

		holiday, err := mapper.HolidayModeResult(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return holiday, nil
	})
}

// SetHolidayMode schedules the holiday override between start and end with
// the given setback temperature.
func (m *Manager) SetHolidayMode(ctx context.Context, start, end time.Time, temperature float64) error {
	return m.put(ctx, urls.SystemHolidayMode, payloads.NewHolidayMode(true, start, end, temperature))
}

// RemoveHolidayMode deactivates the holiday override. The backend keeps the
// stored window, so deactivation writes an inactive window that already
// ended, at frost protection temperature.
func (m *Manager) RemoveHolidayMode(ctx context.Context) error {
	end := time.Now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -1)

	return m.put(ctx, urls.SystemHolidayMode, payloads.NewHolidayMode(false, start, end, multimatic.FrostProtectionTemp))
}

// GetVentilation returns the ventilation unit, or nil when the installation
// has none.
func (m *Manager) GetVentilation(ctx context.Context) (*multimatic.Ventilation, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.Ventilation, error) {
		raw, err := m.get(ctx, urls.SystemVentilation)
		if err != nil {
			return nil, err
		}

		ventilation, err := mapper.Ventilation(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return ventilation, nil
	})
}

// SetVentilationOperatingMode switches the ventilation operating mode. An
// unknown mode or a missing ventilation id is skipped without a request.
func (m *Manager) SetVentilationOperatingMode(ctx context.Context, ventilationID string, mode multimatic.OperatingMode) error {
	if ventilationID == "" || !multimatic.SupportsMode(multimatic.VentilationModes, mode) {
		return m.skipWrite("skipping ventilation operating mode write", map[string]interface{}{
			"ventilation": ventilationID,
			"mode":        string(mode),
		})
	}

	return m.put(ctx, func(serial string) string {
		return urls.VentilationOperatingMode(serial, ventilationID)
	}, payloads.NewVentilationOperatingMode(mode))
}

// RequestHvacUpdate asks the boiler to refresh its data. The request is
// only issued when no earlier refresh is still pending, so back-to-back
// calls do not pile up on the backend.
func (m *Manager) RequestHvacUpdate(ctx context.Context) error {
	status, err := m.GetHvacStatus(ctx)
	if err != nil {
		return err
	}

	if status.SyncState != nil && status.SyncState.Pending() {
		if m.logger != nil {
			m.logger.Debug("hvac update already pending, not requesting another", nil)
		}

		return nil
	}

	return m.put(ctx, urls.HvacUpdate, nil)
}
