package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent by clients built with an empty user agent.
const DefaultUserAgent = "clash-augmenter"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client that identifies itself with
// userAgent on every request.
//
// Example usage:
//
//	client := utils.NewHTTPClient("")
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("http://localhost:8080/api/presets")
func NewHTTPClient(userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPClient{
		Client: resty.New().SetHeader("User-Agent", userAgent),
	}
}
