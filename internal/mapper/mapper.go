// Package mapper turns raw mobile API responses into domain values. Every
// response is wrapped in a {"body": ...} envelope; mapping failures are
// reported as plain errors and classified by the caller.
package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

const dateFormat = "2006-01-02"

// Mapping errors.
var (
	ErrMissingBody = errors.New("response has no body")
	ErrNoFacility  = errors.New("facility list is empty")
)

type envelope struct {
	Body json.RawMessage `json:"body"`
	Meta json.RawMessage `json:"meta"`
}

func unwrap(raw []byte) (envelope, error) {
	var env envelope

	if err := json.Unmarshal(raw, &env); err != nil {
		return env, fmt.Errorf("decoding envelope: %w", err)
	}

	if len(env.Body) == 0 {
		return env, ErrMissingBody
	}

	return env, nil
}

func decodeBody(raw []byte, target interface{}) error {
	env, err := unwrap(raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(env.Body, target); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	return nil
}

// Facility list.

type rawFacility struct {
	SerialNumber    string `json:"serialNumber"`
	Name            string `json:"name"`
	FirmwareVersion string `json:"firmwareVersion"`
	NetworkInfo     struct {
		MacAddressEthernet        string `json:"macAddressEthernet"`
		MacAddressWifiAccessPoint string `json:"macAddressWifiAccessPoint"`
	} `json:"networkInformation"`
}

type rawFacilityList struct {
	FacilitiesList []rawFacility `json:"facilitiesList"`
}

// SerialNumber extracts the primary facility's serial from the facility
// list response.
func SerialNumber(raw []byte) (string, error) {
	var list rawFacilityList

	if err := decodeBody(raw, &list); err != nil {
		return "", err
	}

	if len(list.FacilitiesList) == 0 {
		return "", ErrNoFacility
	}

	return list.FacilitiesList[0].SerialNumber, nil
}

// FacilityDetail extracts the facility matching serial, or the primary one
// when serial is empty.
func FacilityDetail(raw []byte, serial string) (*multimatic.FacilityDetail, error) {
	var list rawFacilityList

	if err := decodeBody(raw, &list); err != nil {
		return nil, err
	}

	if len(list.FacilitiesList) == 0 {
		return nil, ErrNoFacility
	}

	selected := list.FacilitiesList[0]

	if serial != "" {
		found := false

		for _, candidate := range list.FacilitiesList {
			if candidate.SerialNumber == serial {
				selected = candidate
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("%w: serial %s", ErrNoFacility, serial)
		}
	}

	return &multimatic.FacilityDetail{
		Name:            selected.Name,
		SerialNumber:    selected.SerialNumber,
		FirmwareVersion: selected.FirmwareVersion,
		EthernetMAC:     selected.NetworkInfo.MacAddressEthernet,
		WiFiMAC:         selected.NetworkInfo.MacAddressWifiAccessPoint,
	}, nil
}

// AuthToken extracts the one-time token from the token/new response.
func AuthToken(raw []byte) (string, error) {
	var body struct {
		AuthToken string `json:"authToken"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return "", err
	}

	if body.AuthToken == "" {
		return "", fmt.Errorf("%w: empty authToken", ErrMissingBody)
	}

	return body.AuthToken, nil
}

// Zones.

type rawQuickVeto struct {
	Active              bool    `json:"active"`
	SetpointTemperature float64 `json:"setpoint_temperature"`
}

type rawZone struct {
	ID            string `json:"_id"`
	Configuration struct {
		Name              string        `json:"name"`
		InsideTemperature float64       `json:"inside_temperature"`
		ActiveFunction    string        `json:"active_function"`
		QuickVeto         *rawQuickVeto `json:"quick_veto"`
		Enabled           bool          `json:"enabled"`
	} `json:"configuration"`
	Heating struct {
		Configuration struct {
			Mode                string  `json:"mode"`
			SetpointTemperature float64 `json:"setpoint_temperature"`
			SetbackTemperature  float64 `json:"setback_temperature"`
		} `json:"configuration"`
	} `json:"heating"`
	RBR bool `json:"rbr"`
}

func zoneFromRaw(raw rawZone) multimatic.Zone {
	zone := multimatic.Zone{
		ID:                 raw.ID,
		Name:               raw.Configuration.Name,
		CurrentTemperature: raw.Configuration.InsideTemperature,
		ActiveFunction:     raw.Configuration.ActiveFunction,
		RBR:                raw.RBR,
		Heating: multimatic.ZoneHeating{
			OperatingMode: multimatic.OperatingMode(raw.Heating.Configuration.Mode),
			TargetHigh:    raw.Heating.Configuration.SetpointTemperature,
			TargetLow:     raw.Heating.Configuration.SetbackTemperature,
		},
	}

	if raw.Configuration.QuickVeto != nil && raw.Configuration.QuickVeto.Active {
		zone.QuickVeto = &multimatic.QuickVeto{
			Target: raw.Configuration.QuickVeto.SetpointTemperature,
		}
	}

	return zone
}

// Zones maps the zone list response.
func Zones(raw []byte) ([]multimatic.Zone, error) {
	var rawZones []rawZone

	if err := decodeBody(raw, &rawZones); err != nil {
		return nil, err
	}

	zones := make([]multimatic.Zone, 0, len(rawZones))
	for _, rz := range rawZones {
		zones = append(zones, zoneFromRaw(rz))
	}

	return zones, nil
}

// Zone maps a single zone response.
func Zone(raw []byte) (*multimatic.Zone, error) {
	var rz rawZone

	if err := decodeBody(raw, &rz); err != nil {
		return nil, err
	}

	zone := zoneFromRaw(rz)

	return &zone, nil
}

// Rooms.

type rawRoom struct {
	RoomIndex     int `json:"roomIndex"`
	Configuration struct {
		Name                string  `json:"name"`
		TemperatureSetpoint float64 `json:"temperatureSetpoint"`
		OperationMode       string  `json:"operationMode"`
		CurrentTemperature  float64 `json:"currentTemperature"`
		ChildLock           bool    `json:"childLock"`
		IsWindowOpen        bool    `json:"isWindowOpen"`
		QuickVeto           *struct {
			RemainingDuration int `json:"remainingDuration"`
		} `json:"quickVeto"`
		Devices []struct {
			Name              string `json:"name"`
			SGTIN             string `json:"sgtin"`
			DeviceType        string `json:"deviceType"`
			IsBatteryLow      bool   `json:"isBatteryLow"`
			IsRadioOutOfReach bool   `json:"isRadioOutOfReach"`
		} `json:"devices"`
	} `json:"configuration"`
}

func roomFromRaw(raw rawRoom) multimatic.Room {
	room := multimatic.Room{
		ID:                 fmt.Sprintf("%d", raw.RoomIndex),
		Name:               raw.Configuration.Name,
		OperatingMode:      multimatic.OperatingMode(raw.Configuration.OperationMode),
		CurrentTemperature: raw.Configuration.CurrentTemperature,
		TargetTemperature:  raw.Configuration.TemperatureSetpoint,
		ChildLock:          raw.Configuration.ChildLock,
		WindowOpen:         raw.Configuration.IsWindowOpen,
	}

	if raw.Configuration.QuickVeto != nil {
		room.QuickVeto = &multimatic.QuickVeto{
			Duration: raw.Configuration.QuickVeto.RemainingDuration,
			Target:   raw.Configuration.TemperatureSetpoint,
		}
	}

	for _, device := range raw.Configuration.Devices {
		room.Devices = append(room.Devices, multimatic.RoomDevice{
			Name:            device.Name,
			SGTIN:           device.SGTIN,
			DeviceType:      device.DeviceType,
			BatteryLow:      device.IsBatteryLow,
			RadioOutOfReach: device.IsRadioOutOfReach,
		})
	}

	return room
}

// Rooms maps the room list response.
func Rooms(raw []byte) ([]multimatic.Room, error) {
	var body struct {
		Rooms []rawRoom `json:"rooms"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return nil, err
	}

	rooms := make([]multimatic.Room, 0, len(body.Rooms))
	for _, rr := range body.Rooms {
		rooms = append(rooms, roomFromRaw(rr))
	}

	return rooms, nil
}

// Room maps a single room response.
func Room(raw []byte) (*multimatic.Room, error) {
	var rr rawRoom

	if err := decodeBody(raw, &rr); err != nil {
		return nil, err
	}

	room := roomFromRaw(rr)

	return &room, nil
}

// Domestic hot water.

type rawHotWater struct {
	Configuration struct {
		OperationMode       string  `json:"operation_mode"`
		TemperatureSetpoint float64 `json:"temperature_setpoint"`
		CurrentTemperature  float64 `json:"current_temperature"`
	} `json:"configuration"`
}

func hotWaterFromRaw(id string, raw rawHotWater) *multimatic.HotWater {
	return &multimatic.HotWater{
		ID:                 id,
		Name:               "Hot water",
		OperatingMode:      multimatic.OperatingMode(raw.Configuration.OperationMode),
		CurrentTemperature: raw.Configuration.CurrentTemperature,
		TargetHigh:         raw.Configuration.TemperatureSetpoint,
	}
}

// HotWater maps a single hot water response.
func HotWater(raw []byte, dhwID string) (*multimatic.HotWater, error) {
	var rhw rawHotWater

	if err := decodeBody(raw, &rhw); err != nil {
		return nil, err
	}

	return hotWaterFromRaw(dhwID, rhw), nil
}

type rawCirculation struct {
	Configuration struct {
		OperationMode string `json:"operation_mode"`
	} `json:"configuration"`
}

// Circulation maps a single circulation response.
func Circulation(raw []byte, dhwID string) (*multimatic.Circulation, error) {
	var rc rawCirculation

	if err := decodeBody(raw, &rc); err != nil {
		return nil, err
	}

	return &multimatic.Circulation{
		ID:            dhwID,
		Name:          "Circulation",
		OperatingMode: multimatic.OperatingMode(rc.Configuration.OperationMode),
	}, nil
}

// Dhw maps the dhw list response, pairing hot water and circulation of the
// first dhw entry.
func Dhw(raw []byte) (*multimatic.Dhw, error) {
	var rawDhws []struct {
		ID          string          `json:"_id"`
		HotWater    *rawHotWater    `json:"hotwater"`
		Circulation *rawCirculation `json:"circulation"`
	}

	if err := decodeBody(raw, &rawDhws); err != nil {
		return nil, err
	}

	if len(rawDhws) == 0 {
		return &multimatic.Dhw{}, nil
	}

	entry := rawDhws[0]
	dhw := &multimatic.Dhw{}

	if entry.HotWater != nil {
		dhw.HotWater = hotWaterFromRaw(entry.ID, *entry.HotWater)
	}

	if entry.Circulation != nil {
		dhw.Circulation = &multimatic.Circulation{
			ID:            entry.ID,
			Name:          "Circulation",
			OperatingMode: multimatic.OperatingMode(entry.Circulation.Configuration.OperationMode),
		}
	}

	return dhw, nil
}

// Ventilation maps the ventilation response.
func Ventilation(raw []byte) (*multimatic.Ventilation, error) {
	var rawVentilations []struct {
		ID            string `json:"_id"`
		Configuration struct {
			Name          string  `json:"name"`
			OperationMode string  `json:"operation_mode"`
			DayLevel      float64 `json:"day_level"`
			NightLevel    float64 `json:"night_level"`
		} `json:"configuration"`
	}

	if err := decodeBody(raw, &rawVentilations); err != nil {
		return nil, err
	}

	if len(rawVentilations) == 0 {
		return nil, nil
	}

	rv := rawVentilations[0]

	return &multimatic.Ventilation{
		ID:            rv.ID,
		Name:          rv.Configuration.Name,
		OperatingMode: multimatic.OperatingMode(rv.Configuration.OperationMode),
		TargetHigh:    rv.Configuration.DayLevel,
		TargetLow:     rv.Configuration.NightLevel,
	}, nil
}

// System-wide overrides.

// QuickModeResult maps the quick mode response.
func QuickModeResult(raw []byte) (multimatic.QuickMode, error) {
	var body struct {
		QuickMode string `json:"quickmode"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return "", err
	}

	return multimatic.QuickMode(body.QuickMode), nil
}

// HolidayModeResult maps the holiday mode response.
func HolidayModeResult(raw []byte) (*multimatic.HolidayMode, error) {
	var body struct {
		Active              bool    `json:"active"`
		StartDate           string  `json:"start_date"`
		EndDate             string  `json:"end_date"`
		TemperatureSetpoint float64 `json:"temperature_setpoint"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return nil, err
	}

	holiday := &multimatic.HolidayMode{
		Active:      body.Active,
		Temperature: body.TemperatureSetpoint,
	}

	if body.StartDate != "" {
		start, err := time.Parse(dateFormat, body.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday start date: %w", err)
		}

		holiday.Start = start
	}

	if body.EndDate != "" {
		end, err := time.Parse(dateFormat, body.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday end date: %w", err)
		}

		holiday.End = end
	}

	return holiday, nil
}

// HVAC state.

// HvacStatus maps the hvac overview response. The sync state travels in the
// meta section, not the body.
func HvacStatus(raw []byte) (*multimatic.HvacStatus, error) {
	env, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	var body struct {
		OnlineStatus struct {
			Status string `json:"status"`
		} `json:"onlineStatus"`
		FirmwareUpdateStatus struct {
			Status string `json:"status"`
		} `json:"firmwareUpdateStatus"`
		ErrorMessages []struct {
			DeviceName  string    `json:"deviceName"`
			Title       string    `json:"title"`
			StatusCode  string    `json:"statusCode"`
			Description string    `json:"description"`
			Timestamp   time.Time `json:"timestamp"`
		} `json:"errorMessages"`
	}

	if err := json.Unmarshal(env.Body, &body); err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}

	status := &multimatic.HvacStatus{
		Online:           body.OnlineStatus.Status == "ONLINE",
		FirmwareUpToDate: body.FirmwareUpdateStatus.Status == "UP_TO_DATE",
	}

	for _, message := range body.ErrorMessages {
		status.Errors = append(status.Errors, multimatic.HvacError{
			DeviceName:  message.DeviceName,
			Title:       message.Title,
			StatusCode:  message.StatusCode,
			Description: message.Description,
			Timestamp:   message.Timestamp,
		})
	}

	if len(env.Meta) > 0 {
		var meta struct {
			SyncState struct {
				State string `json:"state"`
			} `json:"syncState"`
		}

		if err := json.Unmarshal(env.Meta, &meta); err == nil && meta.SyncState.State != "" {
			status.SyncState = &multimatic.HvacSyncState{State: meta.SyncState.State}
		}
	}

	return status, nil
}

// SystemControl is the decoded system control overview: everything the
// backend reports in one shot.
type SystemControl struct {
	Zones              []multimatic.Zone
	Dhw                *multimatic.Dhw
	Ventilation        *multimatic.Ventilation
	QuickMode          multimatic.QuickMode
	HolidayMode        *multimatic.HolidayMode
	OutdoorTemperature *float64
}

// System maps the system control overview response.
func System(raw []byte) (*SystemControl, error) {
	var body struct {
		Zones []rawZone `json:"zones"`
		Dhw   []struct {
			ID          string          `json:"_id"`
			HotWater    *rawHotWater    `json:"hotwater"`
			Circulation *rawCirculation `json:"circulation"`
		} `json:"dhw"`
		Ventilation []struct {
			ID            string `json:"_id"`
			Configuration struct {
				Name          string  `json:"name"`
				OperationMode string  `json:"operation_mode"`
				DayLevel      float64 `json:"day_level"`
				NightLevel    float64 `json:"night_level"`
			} `json:"configuration"`
		} `json:"ventilation"`
		Configuration struct {
			QuickMode *struct {
				QuickMode string `json:"quickmode"`
			} `json:"quickmode"`
			HolidayMode *struct {
				Active              bool    `json:"active"`
				StartDate           string  `json:"start_date"`
				EndDate             string  `json:"end_date"`
				TemperatureSetpoint float64 `json:"temperature_setpoint"`
			} `json:"holidaymode"`
		} `json:"configuration"`
		Status struct {
			OutsideTemperature *float64 `json:"outside_temperature"`
		} `json:"status"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return nil, err
	}

	system := &SystemControl{
		OutdoorTemperature: body.Status.OutsideTemperature,
	}

	for _, rz := range body.Zones {
		system.Zones = append(system.Zones, zoneFromRaw(rz))
	}

	if len(body.Dhw) > 0 {
		entry := body.Dhw[0]
		system.Dhw = &multimatic.Dhw{}

		if entry.HotWater != nil {
			system.Dhw.HotWater = hotWaterFromRaw(entry.ID, *entry.HotWater)
		}

		if entry.Circulation != nil {
			system.Dhw.Circulation = &multimatic.Circulation{
				ID:            entry.ID,
				Name:          "Circulation",
				OperatingMode: multimatic.OperatingMode(entry.Circulation.Configuration.OperationMode),
			}
		}
	}

	if len(body.Ventilation) > 0 {
		rv := body.Ventilation[0]
		system.Ventilation = &multimatic.Ventilation{
			ID:            rv.ID,
			Name:          rv.Configuration.Name,
			OperatingMode: multimatic.OperatingMode(rv.Configuration.OperationMode),
			TargetHigh:    rv.Configuration.DayLevel,
			TargetLow:     rv.Configuration.NightLevel,
		}
	}

	if body.Configuration.QuickMode != nil {
		system.QuickMode = multimatic.QuickMode(body.Configuration.QuickMode.QuickMode)
	}

	if body.Configuration.HolidayMode != nil {
		rawHoliday := body.Configuration.HolidayMode
		holiday := &multimatic.HolidayMode{
			Active:      rawHoliday.Active,
			Temperature: rawHoliday.TemperatureSetpoint,
		}

		if start, err := time.Parse(dateFormat, rawHoliday.StartDate); err == nil {
			holiday.Start = start
		}

		if end, err := time.Parse(dateFormat, rawHoliday.EndDate); err == nil {
			holiday.End = end
		}

		system.HolidayMode = holiday
	}

	return system, nil
}

// Reports.

type rawReport struct {
	ID              string  `json:"_id"`
	Name            string  `json:"name"`
	Value           float64 `json:"value"`
	Unit            string  `json:"unit"`
	MeasureCategory string  `json:"measurement_category"`
}

type rawReportDevice struct {
	ID      string      `json:"_id"`
	Name    string      `json:"name"`
	Reports []rawReport `json:"reports"`
}

func liveReportFromRaw(device rawReportDevice, report rawReport) multimatic.LiveReport {
	return multimatic.LiveReport{
		ID:              report.ID,
		Name:            report.Name,
		Value:           report.Value,
		Unit:            report.Unit,
		DeviceID:        device.ID,
		DeviceName:      device.Name,
		MeasureCategory: report.MeasureCategory,
	}
}

// LiveReports maps the live report response, flattened across devices.
func LiveReports(raw []byte) ([]multimatic.LiveReport, error) {
	var body struct {
		Devices []rawReportDevice `json:"devices"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return nil, err
	}

	var reports []multimatic.LiveReport

	for _, device := range body.Devices {
		for _, report := range device.Reports {
			reports = append(reports, liveReportFromRaw(device, report))
		}
	}

	return reports, nil
}

// LiveReportSingle maps a single live report response.
func LiveReportSingle(raw []byte) (*multimatic.LiveReport, error) {
	var report rawReport

	if err := decodeBody(raw, &report); err != nil {
		return nil, err
	}

	return &multimatic.LiveReport{
		ID:              report.ID,
		Name:            report.Name,
		Value:           report.Value,
		Unit:            report.Unit,
		MeasureCategory: report.MeasureCategory,
	}, nil
}

// OutdoorTemperature maps the system status response.
func OutdoorTemperature(raw []byte) (*float64, error) {
	var body struct {
		OutsideTemperature *float64 `json:"outside_temperature"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return nil, err
	}

	return body.OutsideTemperature, nil
}

// Gateway maps the gateway type response.
func Gateway(raw []byte) (string, error) {
	var body struct {
		GatewayType string `json:"gatewayType"`
	}

	if err := decodeBody(raw, &body); err != nil {
		return "", err
	}

	return body.GatewayType, nil
}

// EmfReports maps the energy monitoring response, one report per device and
// function.
func EmfReports(raw []byte) ([]multimatic.EmfReport, error) {
	var rawDevices []struct {
		ID            string `json:"id"`
		MarketingName string `json:"marketingName"`
		Type          string `json:"type"`
		Reports       []struct {
			Function     string  `json:"function"`
			EnergyType   string  `json:"energyType"`
			CurrentPower float64 `json:"value"`
		} `json:"reports"`
	}

	if err := decodeBody(raw, &rawDevices); err != nil {
		return nil, err
	}

	var reports []multimatic.EmfReport

	for _, device := range rawDevices {
		for _, report := range device.Reports {
			reports = append(reports, multimatic.EmfReport{
				DeviceID:     device.ID,
				DeviceName:   device.MarketingName,
				DeviceType:   device.Type,
				Function:     report.Function,
				Energy:       report.EnergyType,
				CurrentPower: report.CurrentPower,
			})
		}
	}

	return reports, nil
}
