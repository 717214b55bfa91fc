package constants

import "time"

// Default API endpoint.
const (
	// DefaultEndpoint is the production mobile API base URL.
	DefaultEndpoint = "https://smart.vaillant.com/mobile/api/v4"

	// DefaultSmartphoneID identifies this client to the API.
	DefaultSmartphoneID = "multimatic-go"

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "multimatic-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry defaults.
const (
	// DefaultRetryTries is the total number of attempts for retryable
	// read failures, including the first.
	DefaultRetryTries = 5

	// DefaultRetryBackoff is the base backoff between policy retries.
	DefaultRetryBackoff = 500 * time.Millisecond

	// DefaultRetryWaitMin is the minimum wait for transport-level retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait for transport-level retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Cache defaults.
const (
	// DefaultCacheTTL is the default lifetime of cached read responses.
	DefaultCacheTTL = time.Minute
)

// Temperature handling.
const (
	// TemperatureStep is the granularity the backend accepts; setpoints
	// are rounded to the nearest step before being sent.
	TemperatureStep = 0.5
)
