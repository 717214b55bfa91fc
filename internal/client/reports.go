package client

import (
	"context"

	"github.com/homeclimate-io/multimatic/internal/mapper"
	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// GetLiveReports returns all live measurements, flattened across devices.
func (m *Manager) GetLiveReports(ctx context.Context) ([]multimatic.LiveReport, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) ([]multimatic.LiveReport, error) {
		raw, err := m.get(ctx, urls.LiveReport)
		if err != nil {
			return nil, err
		}

		reports, err := mapper.LiveReports(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return reports, nil
	})
}

// GetLiveReport returns a single live measurement of a device.
func (m *Manager) GetLiveReport(ctx context.Context, reportID, deviceID string) (*multimatic.LiveReport, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) (*multimatic.LiveReport, error) {
		raw, err := m.get(ctx, func(serial string) string {
			return urls.LiveReportDevice(serial, deviceID, reportID)
		})
		if err != nil {
			return nil, err
		}

		report, err := mapper.LiveReportSingle(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		report.DeviceID = deviceID

		return report, nil
	})
}

// GetEmfDevices returns the energy monitoring readings per device and
// function.
func (m *Manager) GetEmfDevices(ctx context.Context) ([]multimatic.EmfReport, error) {
	return readWithRetry(ctx, m, func(ctx context.Context) ([]multimatic.EmfReport, error) {
		raw, err := m.get(ctx, urls.EmfDevices)
		if err != nil {
			return nil, err
		}

		reports, err := mapper.EmfReports(raw)
		if err != nil {
			return nil, wrongResponse(err, raw)
		}

		return reports, nil
	})
}
