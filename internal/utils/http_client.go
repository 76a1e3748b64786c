package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient embeds *resty.Client so all of its methods are available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL. Every request
// accepts JSON and carries a fresh [TraceIDHeader] unless the caller set one.
// A zero timeout leaves resty's default in place.
//
//	client := utils.NewHTTPClient("https://dummyjson.com", 10*time.Second)
//	resp, err := client.R().SetResult(&page).Get("/recipes")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(TraceIDHeader) == "" {
				r.SetHeader(TraceIDHeader, ids.Generate())
			}
			return nil
		})
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
