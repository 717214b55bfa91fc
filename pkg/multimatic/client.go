package multimatic

import (
	"context"
	"time"
)

// SystemReader provides read access to the aggregated system state.
type SystemReader interface {
	GetSystem(ctx context.Context) (*System, error)
	GetHvacStatus(ctx context.Context) (*HvacStatus, error)
	GetOutdoorTemperature(ctx context.Context) (*float64, error)
	GetGateway(ctx context.Context) (string, error)
	GetFacilityDetail(ctx context.Context, serial string) (*FacilityDetail, error)
}

// ZonesClient provides access to heating zones.
type ZonesClient interface {
	GetZones(ctx context.Context) ([]Zone, error)
	GetZone(ctx context.Context, zoneID string) (*Zone, error)
	SetZoneHeatingOperatingMode(ctx context.Context, zoneID string, mode OperatingMode) error
	SetZoneHeatingSetpointTemperature(ctx context.Context, zoneID string, temperature float64) error
	SetZoneHeatingSetbackTemperature(ctx context.Context, zoneID string, temperature float64) error
	SetZoneQuickVeto(ctx context.Context, zoneID string, veto QuickVeto) error
	RemoveZoneQuickVeto(ctx context.Context, zoneID string) error
}

// RoomsClient provides access to room-by-room control.
type RoomsClient interface {
	GetRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, roomID string) (*Room, error)
	SetRoomOperatingMode(ctx context.Context, roomID string, mode OperatingMode) error
	SetRoomSetpointTemperature(ctx context.Context, roomID string, temperature float64) error
	SetRoomQuickVeto(ctx context.Context, roomID string, veto QuickVeto) error
	RemoveRoomQuickVeto(ctx context.Context, roomID string) error
}

// DhwClient provides access to domestic hot water components.
type DhwClient interface {
	GetDhw(ctx context.Context) (*Dhw, error)
	GetHotWater(ctx context.Context, dhwID string) (*HotWater, error)
	GetCirculation(ctx context.Context, dhwID string) (*Circulation, error)
	SetHotWaterOperatingMode(ctx context.Context, dhwID string, mode OperatingMode) error
	SetHotWaterSetpointTemperature(ctx context.Context, dhwID string, temperature float64) error
}

// SystemControlClient provides access to system-wide overrides.
type SystemControlClient interface {
	GetQuickMode(ctx context.Context) (QuickMode, error)
	SetQuickMode(ctx context.Context, mode QuickMode) error
	RemoveQuickMode(ctx context.Context) error
	GetHolidayMode(ctx context.Context) (*HolidayMode, error)
	SetHolidayMode(ctx context.Context, start, end time.Time, temperature float64) error
	RemoveHolidayMode(ctx context.Context) error
	GetVentilation(ctx context.Context) (*Ventilation, error)
	SetVentilationOperatingMode(ctx context.Context, ventilationID string, mode OperatingMode) error
	RequestHvacUpdate(ctx context.Context) error
}

// ReportsClient provides access to measurements and energy reports.
type ReportsClient interface {
	GetLiveReports(ctx context.Context) ([]LiveReport, error)
	GetLiveReport(ctx context.Context, reportID, deviceID string) (*LiveReport, error)
	GetEmfDevices(ctx context.Context) ([]EmfReport, error)
}

// SessionClient controls the authenticated session explicitly. Sessions are
// otherwise established lazily on the first request.
type SessionClient interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

// Manager is the client facade for the multiMATIC API.
type Manager interface {
	SystemReader
	ZonesClient
	RoomsClient
	DhwClient
	SystemControlClient
	ReportsClient
	SessionClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Manager.
//
// # Serial number resolution
//
// If Serial is set, it is fixed: the manager uses it for every request and
// never overwrites it from backend responses. If it is empty, the manager
// resolves it lazily from the facility list before the first serial-dependent
// request, and re-resolves it after a session loss, so a backend-side serial
// change is picked up on the next call.
//
// # Retries
//
// Read operations run under a RetryPolicy derived from RetryTries/
// RetryBackoff; malformed 2xx responses are retried, other API errors
// surface immediately. Transport-level retries for connection failures can
// additionally be tuned via TransportRetryMax/TransportRetryWaitMin/
// TransportRetryWaitMax; leave TransportRetryMax at 0 to keep all retrying
// at the policy level.
type Config struct {
	// Endpoint is the base URL of the mobile API. Empty means the
	// production endpoint.
	Endpoint string

	// Username and Password are the myVaillant account credentials.
	Username string
	Password string

	// SmartphoneID identifies this client to the API. Any stable string.
	SmartphoneID string

	// Serial fixes the gateway serial number. Empty means lazy resolution
	// from the facility list.
	Serial string

	// RetryTries is the total number of attempts for retryable read
	// failures. Zero means the default.
	RetryTries int
	// RetryBackoff is the base backoff between policy retries. The wait
	// grows linearly with the attempt number. Zero means the default, a
	// negative value disables the wait.
	RetryBackoff time.Duration

	// TransportRetryMax enables connection-level retries in the HTTP
	// transport when > 0.
	TransportRetryMax     int
	TransportRetryWaitMin time.Duration
	TransportRetryWaitMax time.Duration

	// Cache optionally caches read responses (facility list, system
	// snapshots). Nil disables caching.
	Cache *CacheConfig

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
