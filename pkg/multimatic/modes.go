package multimatic

// OperatingMode is the operating mode of a component.
type OperatingMode string

// Operating modes known by the API.
const (
	ModeAuto   OperatingMode = "AUTO"
	ModeOn     OperatingMode = "ON"
	ModeOff    OperatingMode = "OFF"
	ModeDay    OperatingMode = "DAY"
	ModeNight  OperatingMode = "NIGHT"
	ModeManual OperatingMode = "MANUAL"

	// ModeQuickVeto is derived, never written: it marks a component whose
	// schedule is overridden by an active quick veto.
	ModeQuickVeto OperatingMode = "QUICK_VETO"
)

// QuickMode is a system-wide quick mode.
type QuickMode string

// Quick modes known by the API.
const (
	QuickModeHotWaterBoost    QuickMode = "QM_HOTWATER_BOOST"
	QuickModeVentilationBoost QuickMode = "QM_VENTILATION_BOOST"
	QuickModeOneDayAway       QuickMode = "QM_ONE_DAY_AWAY"
	QuickModeOneDayAtHome     QuickMode = "QM_ONE_DAY_AT_HOME"
	QuickModeParty            QuickMode = "QM_PARTY"
	QuickModeSystemOff        QuickMode = "QM_SYSTEM_OFF"
	QuickModeQuickVeto        QuickMode = "QM_QUICK_VETO"
	QuickModeHoliday          QuickMode = "QM_HOLIDAY"
)

// Mode sets applicable per component class. A write with a mode outside the
// component's set is a validation no-op, not an API call.
var (
	HotWaterModes    = []OperatingMode{ModeOn, ModeOff, ModeAuto}
	CirculationModes = []OperatingMode{ModeOn, ModeOff, ModeAuto}
	RoomModes        = []OperatingMode{ModeAuto, ModeOff, ModeManual}
	ZoneHeatingModes = []OperatingMode{ModeAuto, ModeOff, ModeDay, ModeNight}
	VentilationModes = []OperatingMode{ModeAuto, ModeOff, ModeDay, ModeNight}
)

// SupportsMode reports whether mode is part of the allowed set.
func SupportsMode(allowed []OperatingMode, mode OperatingMode) bool {
	for _, candidate := range allowed {
		if candidate == mode {
			return true
		}
	}

	return false
}
