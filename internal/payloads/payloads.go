// Package payloads builds the request bodies of the mobile API. All
// functions are pure; temperatures are rounded to the backend's granularity
// before serialization.
package payloads

import (
	"math"
	"time"

	"github.com/homeclimate-io/multimatic/internal/constants"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

const dateFormat = "2006-01-02"

// RoundTemperature rounds to the nearest temperature step, the only
// granularity the backend accepts.
func RoundTemperature(temperature float64) float64 {
	return math.Round(temperature/constants.TemperatureStep) * constants.TemperatureStep
}

// HotWaterTemperatureSetpoint is the body for the hot water setpoint endpoint.
type HotWaterTemperatureSetpoint struct {
	TemperatureSetpoint float64 `json:"temperature_setpoint"`
}

func NewHotWaterTemperatureSetpoint(temperature float64) HotWaterTemperatureSetpoint {
	return HotWaterTemperatureSetpoint{TemperatureSetpoint: RoundTemperature(temperature)}
}

// OperationMode is the body for the hot water and circulation mode endpoints.
type OperationMode struct {
	OperationMode string `json:"operation_mode"`
}

func NewOperationMode(mode multimatic.OperatingMode) OperationMode {
	return OperationMode{OperationMode: string(mode)}
}

// RoomTemperatureSetpoint is the body for the room setpoint endpoint. The
// room-by-room API uses camelCase keys.
type RoomTemperatureSetpoint struct {
	TemperatureSetpoint float64 `json:"temperatureSetpoint"`
}

func NewRoomTemperatureSetpoint(temperature float64) RoomTemperatureSetpoint {
	return RoomTemperatureSetpoint{TemperatureSetpoint: RoundTemperature(temperature)}
}

// RoomOperatingMode is the body for the room mode endpoint.
type RoomOperatingMode struct {
	OperationMode string `json:"operationMode"`
}

func NewRoomOperatingMode(mode multimatic.OperatingMode) RoomOperatingMode {
	return RoomOperatingMode{OperationMode: string(mode)}
}

// RoomQuickVeto is the body for the room quick veto endpoint.
type RoomQuickVeto struct {
	TemperatureSetpoint float64 `json:"temperatureSetpoint"`
	RemainingDuration   int     `json:"remainingDuration"`
}

func NewRoomQuickVeto(veto multimatic.QuickVeto) RoomQuickVeto {
	return RoomQuickVeto{
		TemperatureSetpoint: RoundTemperature(veto.Target),
		RemainingDuration:   veto.Duration,
	}
}

// ZoneTemperatureSetpoint is the body for the zone setpoint endpoint.
type ZoneTemperatureSetpoint struct {
	SetpointTemperature float64 `json:"setpoint_temperature"`
}

func NewZoneTemperatureSetpoint(temperature float64) ZoneTemperatureSetpoint {
	return ZoneTemperatureSetpoint{SetpointTemperature: RoundTemperature(temperature)}
}

// ZoneTemperatureSetback is the body for the zone setback endpoint.
type ZoneTemperatureSetback struct {
	SetbackTemperature float64 `json:"setback_temperature"`
}

func NewZoneTemperatureSetback(temperature float64) ZoneTemperatureSetback {
	return ZoneTemperatureSetback{SetbackTemperature: RoundTemperature(temperature)}
}

// ZoneOperatingMode is the body for the zone heating mode endpoint.
type ZoneOperatingMode struct {
	Mode string `json:"mode"`
}

func NewZoneOperatingMode(mode multimatic.OperatingMode) ZoneOperatingMode {
	return ZoneOperatingMode{Mode: string(mode)}
}

// ZoneQuickVeto is the body for the zone quick veto endpoint. The zone veto
// duration is fixed backend side, only the setpoint is sent.
type ZoneQuickVeto struct {
	SetpointTemperature float64 `json:"setpoint_temperature"`
}

func NewZoneQuickVeto(veto multimatic.QuickVeto) ZoneQuickVeto {
	return ZoneQuickVeto{SetpointTemperature: RoundTemperature(veto.Target)}
}

// QuickModeBody wraps the quick mode name the way the endpoint expects.
type QuickModeBody struct {
	QuickMode QuickModeInner `json:"quickmode"`
}

type QuickModeInner struct {
	QuickMode string `json:"quickmode"`
	Duration  int    `json:"duration"`
}

func NewQuickMode(mode multimatic.QuickMode) QuickModeBody {
	return QuickModeBody{QuickMode: QuickModeInner{QuickMode: string(mode), Duration: 0}}
}

// HolidayMode is the body for the holiday mode endpoint; it doubles as the
// removal body with Active false and a past window.
type HolidayMode struct {
	Active              bool    `json:"active"`
	Start               string  `json:"start_date"`
	End                 string  `json:"end_date"`
	TemperatureSetpoint float64 `json:"temperature_setpoint"`
}

func NewHolidayMode(active bool, start, end time.Time, temperature float64) HolidayMode {
	return HolidayMode{
		Active:              active,
		Start:               start.Format(dateFormat),
		End:                 end.Format(dateFormat),
		TemperatureSetpoint: RoundTemperature(temperature),
	}
}

// VentilationOperatingMode is the body for the ventilation fan mode endpoint.
type VentilationOperatingMode struct {
	Mode string `json:"mode"`
}

func NewVentilationOperatingMode(mode multimatic.OperatingMode) VentilationOperatingMode {
	return VentilationOperatingMode{Mode: string(mode)}
}
