package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HealthPath is the well-known probe path every Rice service exposes.
const HealthPath = "/health"

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 5 * time.Second

// Outcome classifies a single reachability probe.
type Outcome int

const (
	// Skipped means the service is disabled and was not probed.
	Skipped Outcome = iota

	// Reachable means the probe got a response in the success range.
	Reachable

	// Unreachable means a network-level failure: DNS, connection
	// refused, timeout.
	Unreachable

	// Rejected means a response arrived but indicates an authorization
	// or server error.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the classified outcome of one probe.
type Result struct {
	Service    string
	Outcome    Outcome
	URL        string // full health URL that was probed, empty when skipped
	StatusCode int    // set when a response was received
	Err        error  // set when the probe failed at the network level
}

// Client performs reachability probes against Rice services. The zero
// value is not usable; construct with NewClient.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client whose probes are bounded by timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Check issues a single probe against the service's health endpoint.
// Disabled services (empty baseURL) are reported as Skipped without any
// network activity. There are no retries: one attempt per invocation.
//
// The token is attached as a bearer credential and never appears in the
// returned Result's error.
func (c *Client) Check(ctx context.Context, service, baseURL, token string) Result {
	if baseURL == "" {
		return Result{Service: service, Outcome: Skipped}
	}

	url := HealthURL(baseURL)
	result := Result{Service: service, URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Outcome = Unreachable
		result.Err = fmt.Errorf("building request for %s: %w", url, err)
		return result
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Outcome = Unreachable
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.Outcome = Reachable
	} else {
		result.Outcome = Rejected
	}
	return result
}

// HealthURL derives the full probe URL from a configured base URL. The
// scheme defaults to http when absent, matching how instance URLs are
// usually configured (host:port).
func HealthURL(baseURL string) string {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return strings.TrimRight(baseURL, "/") + HealthPath
}
