// Package http implements the transport for the mobile API: a cookie-bearing
// HTTP client that maps non-2xx responses to structured API errors.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/homeclimate-io/multimatic/internal/constants"
	"github.com/homeclimate-io/multimatic/pkg/multimatic"
)

// Logger interface for HTTP-level logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport. The session cookies set by the authenticate
// endpoint live in its cookie jar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	// inner is the client the retry layer executes requests with; it is
	// the one that applies and stores cookies, so jar swaps go here.
	inner     *http.Client
	jar       http.CookieJar
	logger    Logger
	debug     bool
	userAgent string
}

// Option configures the client.
type Option func(*clientOptions)

type clientOptions struct {
	logger       Logger
	debug        bool
	userAgent    string
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithRetryConfig enables connection-level retries (5xx, 429, dial errors)
// in the underlying client. Policy-level retries stay with the caller.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(o *clientOptions) {
		o.retryMax = retryMax
		o.retryWaitMin = waitMin
		o.retryWaitMax = waitMax
	}
}

// NewClient creates a new transport client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	options := &clientOptions{
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(options)
	}

	// cookiejar.New never fails with a nil options struct.
	jar, _ := cookiejar.New(nil)

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = options.retryMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.Jar = jar

	if options.retryMax > 0 {
		retryClient.RetryWaitMin = options.retryWaitMin
		retryClient.RetryWaitMax = options.retryWaitMax
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: retryClient.StandardClient(),
		inner:      retryClient.HTTPClient,
		jar:        jar,
		logger:     options.logger,
		debug:      options.debug,
		userAgent:  options.userAgent,
	}
}

// ClearCookies drops the session cookies, forcing a fresh login on the next
// authenticated request.
func (c *Client) ClearCookies() {
	jar, _ := cookiejar.New(nil)
	c.jar = jar
	c.inner.Jar = jar
}

// Do executes a request against the API.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode >= 400 {
		return resp, parseAPIError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// parseAPIError builds the structured error for a non-2xx response.
func parseAPIError(status int, body []byte) error {
	message := http.StatusText(status)

	var errBody struct {
		ErrorCode    string `json:"errorCode"`
		ErrorMessage string `json:"errorMessage"`
	}

	if err := json.Unmarshal(body, &errBody); err == nil && errBody.ErrorMessage != "" {
		message = errBody.ErrorMessage
	}

	return &multimatic.APIError{
		Status:   status,
		Message:  message,
		Response: string(body),
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
