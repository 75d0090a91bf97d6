package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with the given
// per-request timeout applied to the underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. A bounded timeout keeps a
// single unresponsive external host from blocking a request indefinitely.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{Client: resty.New().SetTimeout(timeout)}
}
