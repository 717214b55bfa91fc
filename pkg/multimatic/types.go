package multimatic

import (
	"time"
)

// Temperature bounds used by the backend.
const (
	// FrostProtectionTemp is the setback temperature the backend falls back
	// to when a component is off.
	FrostProtectionTemp = 5.0

	// ZoneMinTargetTemp is the minimum target temperature for a zone.
	ZoneMinTargetTemp = 5.0

	// ZoneMaxTargetTemp is the maximum target temperature for a zone.
	ZoneMaxTargetTemp = 30.0

	// HotWaterMinTargetTemp is the minimum target temperature for hot water.
	HotWaterMinTargetTemp = 35.0

	// HotWaterMaxTargetTemp is the maximum target temperature for hot water.
	HotWaterMaxTargetTemp = 70.0
)

// QuickVeto is a temporary setpoint override with a fixed duration,
// overriding the active schedule of a zone or room.
type QuickVeto struct {
	// Duration is the remaining veto duration in minutes. Zero means the
	// backend default duration.
	Duration int `json:"duration" yaml:"duration"`
	// Target is the override target temperature.
	Target float64 `json:"target" yaml:"target"`
}

// HolidayMode is the system-wide scheduled override between two dates.
type HolidayMode struct {
	Active      bool      `json:"active"      yaml:"active"`
	Start       time.Time `json:"start"       yaml:"start"`
	End         time.Time `json:"end"         yaml:"end"`
	Temperature float64   `json:"temperature" yaml:"temperature"`
}

// IsApplied reports whether the holiday mode is active and the current time
// falls inside its window.
func (h *HolidayMode) IsApplied(now time.Time) bool {
	return h != nil && h.Active && !now.Before(h.Start) && now.Before(h.End.AddDate(0, 0, 1))
}

// ActiveMode is the mode a component effectively runs with, derived from its
// operating mode, time program and vetoes.
type ActiveMode struct {
	Target  float64       `json:"target"  yaml:"target"`
	Current OperatingMode `json:"current" yaml:"current"`
}

// ZoneHeating is the heating function of a zone.
type ZoneHeating struct {
	OperatingMode OperatingMode `json:"operating_mode" yaml:"operating_mode"`
	// TargetHigh is the day target temperature.
	TargetHigh float64 `json:"target_high" yaml:"target_high"`
	// TargetLow is the night (setback) target temperature.
	TargetLow float64 `json:"target_low" yaml:"target_low"`
}

// ActiveMode derives the effective mode of the heating function.
func (h ZoneHeating) ActiveMode() ActiveMode {
	switch h.OperatingMode {
	case ModeNight:
		return ActiveMode{Target: h.TargetLow, Current: ModeNight}
	case ModeDay:
		return ActiveMode{Target: h.TargetHigh, Current: ModeDay}
	case ModeOff:
		return ActiveMode{Target: ZoneMinTargetTemp, Current: ModeOff}
	default:
		return ActiveMode{Target: h.TargetHigh, Current: h.OperatingMode}
	}
}

// Zone is a heating zone of the installation.
type Zone struct {
	ID                 string       `json:"id"                    yaml:"id"`
	Name               string       `json:"name"                  yaml:"name"`
	Heating            ZoneHeating  `json:"heating"               yaml:"heating"`
	CurrentTemperature float64      `json:"current_temperature"   yaml:"current_temperature"`
	QuickVeto          *QuickVeto   `json:"quick_veto,omitempty"  yaml:"quick_veto,omitempty"`
	ActiveFunction     string       `json:"active_function"       yaml:"active_function"`
	RBR                bool         `json:"rbr"                   yaml:"rbr"`
}

// ActiveMode derives the effective mode of the zone, a quick veto winning
// over the configured operating mode.
func (z *Zone) ActiveMode() ActiveMode {
	if z.QuickVeto != nil {
		return ActiveMode{Target: z.QuickVeto.Target, Current: ModeQuickVeto}
	}

	return z.Heating.ActiveMode()
}

// RoomDevice is a device attached to a room (valve, thermostat).
type RoomDevice struct {
	Name          string `json:"name"           yaml:"name"`
	SGTIN         string `json:"sgtin"          yaml:"sgtin"`
	DeviceType    string `json:"device_type"    yaml:"device_type"`
	BatteryLow    bool   `json:"battery_low"    yaml:"battery_low"`
	RadioOutOfReach bool `json:"radio_out_of_reach" yaml:"radio_out_of_reach"`
}

// Room is a room of a room-by-room installation.
type Room struct {
	ID                 string        `json:"id"                   yaml:"id"`
	Name               string        `json:"name"                 yaml:"name"`
	OperatingMode      OperatingMode `json:"operating_mode"       yaml:"operating_mode"`
	CurrentTemperature float64       `json:"current_temperature"  yaml:"current_temperature"`
	TargetTemperature  float64       `json:"target_temperature"   yaml:"target_temperature"`
	QuickVeto          *QuickVeto    `json:"quick_veto,omitempty" yaml:"quick_veto,omitempty"`
	ChildLock          bool          `json:"child_lock"           yaml:"child_lock"`
	WindowOpen         bool          `json:"window_open"          yaml:"window_open"`
	Devices            []RoomDevice  `json:"devices,omitempty"    yaml:"devices,omitempty"`
}

// HotWater is the domestic hot water component. There is no quick veto for
// this component.
type HotWater struct {
	ID                 string        `json:"id"                  yaml:"id"`
	Name               string        `json:"name"                yaml:"name"`
	OperatingMode      OperatingMode `json:"operating_mode"      yaml:"operating_mode"`
	CurrentTemperature float64       `json:"current_temperature" yaml:"current_temperature"`
	TargetHigh         float64       `json:"target_high"         yaml:"target_high"`
}

// ActiveMode derives the effective mode of the hot water component.
func (h *HotWater) ActiveMode() ActiveMode {
	if h.OperatingMode == ModeOn {
		return ActiveMode{Target: h.TargetHigh, Current: ModeOn}
	}

	return ActiveMode{Target: FrostProtectionTemp, Current: ModeOff}
}

// Circulation is the hot water circulation component. There is no current
// temperature, target temperature nor quick veto for this component.
type Circulation struct {
	ID            string        `json:"id"             yaml:"id"`
	Name          string        `json:"name"           yaml:"name"`
	OperatingMode OperatingMode `json:"operating_mode" yaml:"operating_mode"`
}

// Dhw groups the domestic hot water components.
type Dhw struct {
	HotWater    *HotWater    `json:"hotwater,omitempty"    yaml:"hotwater,omitempty"`
	Circulation *Circulation `json:"circulation,omitempty" yaml:"circulation,omitempty"`
}

// Ventilation is the ventilation unit of the installation.
type Ventilation struct {
	ID            string        `json:"id"             yaml:"id"`
	Name          string        `json:"name"           yaml:"name"`
	OperatingMode OperatingMode `json:"operating_mode" yaml:"operating_mode"`
	TargetHigh    float64       `json:"target_high"    yaml:"target_high"`
	TargetLow     float64       `json:"target_low"     yaml:"target_low"`
}

// FacilityDetail describes one installed system, keyed by serial number.
type FacilityDetail struct {
	Name            string `json:"name"             yaml:"name"`
	SerialNumber    string `json:"serial_number"    yaml:"serial_number"`
	FirmwareVersion string `json:"firmware_version" yaml:"firmware_version"`
	EthernetMAC     string `json:"ethernet_mac"     yaml:"ethernet_mac"`
	WiFiMAC         string `json:"wifi_mac"         yaml:"wifi_mac"`
}

// HvacSyncState is the refresh state of the cloud-to-gateway sync.
type HvacSyncState struct {
	State string `json:"state" yaml:"state"`
}

// Pending reports whether a refresh is already underway, in which case a new
// update request would be a no-op backend side.
func (s *HvacSyncState) Pending() bool {
	return s != nil && s.State == "PENDING"
}

// HvacStatus is the overview of the HVAC state of the installation.
type HvacStatus struct {
	Online          bool           `json:"online"           yaml:"online"`
	FirmwareUpToDate bool          `json:"firmware_up_to_date" yaml:"firmware_up_to_date"`
	SyncState       *HvacSyncState `json:"sync_state,omitempty" yaml:"sync_state,omitempty"`
	Errors          []HvacError    `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HvacError is an error reported by a device of the installation.
type HvacError struct {
	DeviceName  string    `json:"device_name" yaml:"device_name"`
	Title       string    `json:"title"       yaml:"title"`
	StatusCode  string    `json:"status_code" yaml:"status_code"`
	Description string    `json:"description" yaml:"description"`
	Timestamp   time.Time `json:"timestamp"   yaml:"timestamp"`
}

// LiveReport is a single measurement reported by a device.
type LiveReport struct {
	ID           string  `json:"id"            yaml:"id"`
	Name         string  `json:"name"          yaml:"name"`
	Value        float64 `json:"value"         yaml:"value"`
	Unit         string  `json:"unit"          yaml:"unit"`
	DeviceID     string  `json:"device_id"     yaml:"device_id"`
	DeviceName   string  `json:"device_name"   yaml:"device_name"`
	MeasureCategory string `json:"measure_category" yaml:"measure_category"`
}

// EmfReport is an energy consumption report for one device and function.
type EmfReport struct {
	DeviceID   string  `json:"device_id"   yaml:"device_id"`
	DeviceName string  `json:"device_name" yaml:"device_name"`
	DeviceType string  `json:"device_type" yaml:"device_type"`
	Function   string  `json:"function"    yaml:"function"`
	Energy     string  `json:"energy"      yaml:"energy"`
	CurrentPower float64 `json:"current_power" yaml:"current_power"`
}

// System is the aggregated state of the whole installation.
type System struct {
	Facility           *FacilityDetail `json:"facility,omitempty"     yaml:"facility,omitempty"`
	Gateway            string          `json:"gateway"                yaml:"gateway"`
	Zones              []Zone          `json:"zones"                  yaml:"zones"`
	Rooms              []Room          `json:"rooms"                  yaml:"rooms"`
	Dhw                *Dhw            `json:"dhw,omitempty"          yaml:"dhw,omitempty"`
	Ventilation        *Ventilation    `json:"ventilation,omitempty"  yaml:"ventilation,omitempty"`
	QuickMode          QuickMode       `json:"quick_mode,omitempty"   yaml:"quick_mode,omitempty"`
	HolidayMode        *HolidayMode    `json:"holiday_mode,omitempty" yaml:"holiday_mode,omitempty"`
	OutdoorTemperature *float64        `json:"outdoor_temperature,omitempty" yaml:"outdoor_temperature,omitempty"`
	HvacStatus         *HvacStatus     `json:"hvac_status,omitempty"  yaml:"hvac_status,omitempty"`
	LiveReports        []LiveReport    `json:"live_reports,omitempty" yaml:"live_reports,omitempty"`
}
