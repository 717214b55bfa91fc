// Package urls builds the endpoint paths of the mobile API. All functions
// are pure; the transport prepends the base URL.
package urls

import "fmt"

// Authentication endpoints. These are the only paths that do not carry a
// serial number.
func NewToken() string     { return "/account/authentication/v1/token/new" }
func Authenticate() string { return "/account/authentication/v1/authenticate" }
func Logout() string       { return "/account/authentication/v1/logout" }

// FacilitiesList lists the facilities of the account; the primary facility's
// serial number is extracted from it.
func FacilitiesList() string { return "/facilities" }

func facility(serial string) string {
	return "/facilities/" + serial
}

func systemControl(serial string) string {
	return facility(serial) + "/systemcontrol/v1"
}

// System returns the system control overview endpoint.
func System(serial string) string {
	return systemControl(serial)
}

// Zones endpoints.

func Zones(serial string) string {
	return systemControl(serial) + "/zones"
}

func Zone(serial, zoneID string) string {
	return Zones(serial) + "/" + zoneID
}

func ZoneHeatingMode(serial, zoneID string) string {
	return Zone(serial, zoneID) + "/heating/configuration/mode"
}

func ZoneHeatingSetpointTemperature(serial, zoneID string) string {
	return Zone(serial, zoneID) + "/heating/configuration/setpoint_temperature"
}

func ZoneHeatingSetbackTemperature(serial, zoneID string) string {
	return Zone(serial, zoneID) + "/heating/configuration/setback_temperature"
}

func ZoneQuickVeto(serial, zoneID string) string {
	return Zone(serial, zoneID) + "/configuration/quick_veto"
}

// System-wide override endpoints.

func SystemQuickMode(serial string) string {
	return systemControl(serial) + "/configuration/quickmode"
}

func SystemHolidayMode(serial string) string {
	return systemControl(serial) + "/configuration/holidaymode"
}

// Domestic hot water endpoints.

func Dhws(serial string) string {
	return systemControl(serial) + "/dhw"
}

func HotWater(serial, dhwID string) string {
	return Dhws(serial) + "/" + dhwID + "/hotwater"
}

func HotWaterOperatingMode(serial, dhwID string) string {
	return HotWater(serial, dhwID) + "/configuration/operation_mode"
}

func HotWaterTemperatureSetpoint(serial, dhwID string) string {
	return HotWater(serial, dhwID) + "/configuration/temperature_setpoint"
}

func Circulation(serial, dhwID string) string {
	return Dhws(serial) + "/" + dhwID + "/circulation"
}

// Ventilation endpoints.

func SystemVentilation(serial string) string {
	return systemControl(serial) + "/ventilation"
}

func VentilationOperatingMode(serial, ventilationID string) string {
	return fmt.Sprintf("%s/ventilation/%s/fan/configuration/operation_mode", systemControl(serial), ventilationID)
}

// Room-by-room endpoints.

func Rooms(serial string) string {
	return facility(serial) + "/rbr/v1/rooms"
}

func Room(serial, roomID string) string {
	return Rooms(serial) + "/" + roomID
}

func RoomOperatingMode(serial, roomID string) string {
	return Room(serial, roomID) + "/configuration/operationMode"
}

func RoomTemperatureSetpoint(serial, roomID string) string {
	return Room(serial, roomID) + "/configuration/temperatureSetpoint"
}

func RoomQuickVeto(serial, roomID string) string {
	return Room(serial, roomID) + "/configuration/quickVeto"
}

// HVAC state endpoints.

func Hvac(serial string) string {
	return facility(serial) + "/hvacstate/v1/overview"
}

func HvacUpdate(serial string) string {
	return facility(serial) + "/hvacstate/v1/hvacMessages/update"
}

// Reporting endpoints.

func LiveReport(serial string) string {
	return facility(serial) + "/livereport/v1"
}

func LiveReportDevice(serial, deviceID, reportID string) string {
	return fmt.Sprintf("%s/livereport/v1/devices/%s/reports/%s", facility(serial), deviceID, reportID)
}

func SystemStatus(serial string) string {
	return facility(serial) + "/system/v1/status"
}

func GatewayType(serial string) string {
	return facility(serial) + "/public/v1/gatewayType"
}

func EmfDevices(serial string) string {
	return facility(serial) + "/emf/v1/devices"
}
