package payloads_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/homeclimate-io/multimatic/internal/payloads"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"rounds up to half", 60.4, 60.5},
		{"rounds down to half", 22.7, 22.5},
		{"half stays", 21.5, 21.5},
		{"whole stays", 20.0, 20.0},
		{"quarter rounds up", 20.25, 20.5},
		{"low quarter rounds down", 20.2, 20.0},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, test.want, payloads.RoundTemperature(test.in), 0.001)
		})
	}
}

func TestHotWaterTemperatureSetpoint(t *testing.T) {
	t.Parallel()

	body := payloads.NewHotWaterTemperatureSetpoint(60.4)
	assert.InDelta(t, 60.5, body.TemperatureSetpoint, 0.001)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperature_setpoint": 60.5}`, string(encoded))
}

func TestRoomPayloads(t *testing.T) {
	t.Parallel()

	setpoint := payloads.NewRoomTemperatureSetpoint(22.7)
	assert.InDelta(t, 22.5, setpoint.TemperatureSetpoint, 0.001)

	encoded, err := json.Marshal(setpoint)
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperatureSetpoint": 22.5}`, string(encoded))

	veto := payloads.NewRoomQuickVeto(multimatic.QuickVeto{Target: 19.3, Duration: 180})
	encoded, err = json.Marshal(veto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperatureSetpoint": 19.5, "remainingDuration": 180}`, string(encoded))

	mode := payloads.NewRoomOperatingMode(multimatic.ModeManual)
	encoded, err = json.Marshal(mode)
	require.NoError(t, err)
	assert.JSONEq(t, `{"operationMode": "MANUAL"}`, string(encoded))
}

func TestZonePayloads(t *testing.T) {
	t.Parallel()

	setpoint := payloads.NewZoneTemperatureSetpoint(21.2)
	encoded, err := json.Marshal(setpoint)
	require.NoError(t, err)
	assert.JSONEq(t, `{"setpoint_temperature": 21}`, string(encoded))

	setback := payloads.NewZoneTemperatureSetback(15.8)
	encoded, err = json.Marshal(setback)
	require.NoError(t, err)
	assert.JSONEq(t, `{"setback_temperature": 16}`, string(encoded))

	mode := payloads.NewZoneOperatingMode(multimatic.ModeAuto)
	encoded, err = json.Marshal(mode)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode": "AUTO"}`, string(encoded))

	veto := payloads.NewZoneQuickVeto(multimatic.QuickVeto{Target: 23.26})
	encoded, err = json.Marshal(veto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"setpoint_temperature": 23.5}`, string(encoded))
}

func TestQuickModeBody(t *testing.T) {
	t.Parallel()

	body := payloads.NewQuickMode(multimatic.QuickModeHotWaterBoost)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quickmode": {"quickmode": "QM_HOTWATER_BOOST", "duration": 0}}`, string(encoded))
}

func TestHolidayModeBody(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	body := payloads.NewHolidayMode(true, start, end, 15.3)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"active": true,
		"start_date": "2026-09-01",
		"end_date": "2026-09-14",
		"temperature_setpoint": 15.5
	}`, string(encoded))
}

func TestVentilationOperatingMode(t *testing.T) {
	t.Parallel()

	body := payloads.NewVentilationOperatingMode(multimatic.ModeNight)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode": "NIGHT"}`, string(encoded))
}
