package urls_test

import (
	"testing"

	"github.com/homeclimate-io/multimatic/internal/urls"
	"github.com/stretchr/testify/assert"
)

const serial = "1234567890"

func TestAuthenticationPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/account/authentication/v1/token/new", urls.NewToken())
	assert.Equal(t, "/account/authentication/v1/authenticate", urls.Authenticate())
	assert.Equal(t, "/account/authentication/v1/logout", urls.Logout())
	assert.Equal(t, "/facilities", urls.FacilitiesList())
}

func TestSystemControlPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1", urls.System(serial))
	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1/configuration/quickmode", urls.SystemQuickMode(serial))
	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1/configuration/holidaymode", urls.SystemHolidayMode(serial))
	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1/ventilation", urls.SystemVentilation(serial))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/ventilation/vent-1/fan/configuration/operation_mode",
		urls.VentilationOperatingMode(serial, "vent-1"))
}

func TestZonePaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1/zones", urls.Zones(serial))
	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1/zones/Control_ZO1", urls.Zone(serial, "Control_ZO1"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/zones/Control_ZO1/heating/configuration/mode",
		urls.ZoneHeatingMode(serial, "Control_ZO1"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/zones/Control_ZO1/heating/configuration/setpoint_temperature",
		urls.ZoneHeatingSetpointTemperature(serial, "Control_ZO1"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/zones/Control_ZO1/heating/configuration/setback_temperature",
		urls.ZoneHeatingSetbackTemperature(serial, "Control_ZO1"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/zones/Control_ZO1/configuration/quick_veto",
		urls.ZoneQuickVeto(serial, "Control_ZO1"))
}

func TestDhwPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/facilities/1234567890/systemcontrol/v1/dhw", urls.Dhws(serial))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/dhw/Control_DHW/hotwater",
		urls.HotWater(serial, "Control_DHW"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/dhw/Control_DHW/hotwater/configuration/operation_mode",
		urls.HotWaterOperatingMode(serial, "Control_DHW"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/dhw/Control_DHW/hotwater/configuration/temperature_setpoint",
		urls.HotWaterTemperatureSetpoint(serial, "Control_DHW"))
	assert.Equal(t,
		"/facilities/1234567890/systemcontrol/v1/dhw/Control_DHW/circulation",
		urls.Circulation(serial, "Control_DHW"))
}

func TestRoomPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/facilities/1234567890/rbr/v1/rooms", urls.Rooms(serial))
	assert.Equal(t, "/facilities/1234567890/rbr/v1/rooms/1", urls.Room(serial, "1"))
	assert.Equal(t,
		"/facilities/1234567890/rbr/v1/rooms/1/configuration/operationMode",
		urls.RoomOperatingMode(serial, "1"))
	assert.Equal(t,
		"/facilities/1234567890/rbr/v1/rooms/1/configuration/temperatureSetpoint",
		urls.RoomTemperatureSetpoint(serial, "1"))
	assert.Equal(t,
		"/facilities/1234567890/rbr/v1/rooms/1/configuration/quickVeto",
		urls.RoomQuickVeto(serial, "1"))
}

func TestStatusAndReportingPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/facilities/1234567890/hvacstate/v1/overview", urls.Hvac(serial))
	assert.Equal(t, "/facilities/1234567890/hvacstate/v1/hvacMessages/update", urls.HvacUpdate(serial))
	assert.Equal(t, "/facilities/1234567890/livereport/v1", urls.LiveReport(serial))
	assert.Equal(t,
		"/facilities/1234567890/livereport/v1/devices/Control_SYS/reports/WaterPressureSensor",
		urls.LiveReportDevice(serial, "Control_SYS", "WaterPressureSensor"))
	assert.Equal(t, "/facilities/1234567890/system/v1/status", urls.SystemStatus(serial))
	assert.Equal(t, "/facilities/1234567890/public/v1/gatewayType", urls.GatewayType(serial))
	assert.Equal(t, "/facilities/1234567890/emf/v1/devices", urls.EmfDevices(serial))
}
