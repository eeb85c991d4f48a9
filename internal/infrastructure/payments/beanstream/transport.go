package beanstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Endpoint is a logical gateway destination; the transport maps it to a
// URL. The core never handles hosts or TLS itself.
type Endpoint string

const (
	EndpointTransaction Endpoint = "transaction"
	EndpointRecurring   Endpoint = "recurring"
	EndpointProfile     Endpoint = "profile"
)

// Transport posts one url-encoded body to a logical endpoint and returns
// the raw response body. Implementations must be safe for concurrent use.
type Transport interface {
	Post(ctx context.Context, endpoint Endpoint, body string) (string, error)
}

var defaultEndpointURLs = map[Endpoint]string{
	EndpointTransaction: "https://www.beanstream.com/scripts/process_transaction.asp",
	EndpointRecurring:   "https://www.beanstream.com/scripts/recurring_billing.asp",
	EndpointProfile:     "https://www.beanstream.com/scripts/payment_profile.asp",
}

// HTTPTransport is the production Transport: one form POST per call.
type HTTPTransport struct {
	client *http.Client
	urls   map[Endpoint]string
}

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{Timeout: 30 * time.Second},
		urls:   defaultEndpointURLs,
	}
}

// NewHTTPTransportWithURLs overrides the endpoint URLs; endpoints not in
// the override keep their defaults. Used to point at a sandbox or a local
// stub.
func NewHTTPTransportWithURLs(urls map[Endpoint]string) *HTTPTransport {
	t := NewHTTPTransport()
	merged := map[Endpoint]string{}
	for endpoint, u := range defaultEndpointURLs {
		merged[endpoint] = u
	}
	for endpoint, u := range urls {
		merged[endpoint] = u
	}
	t.urls = merged
	return t
}

func (t *HTTPTransport) Post(ctx context.Context, endpoint Endpoint, body string) (string, error) {
	u, ok := t.urls[endpoint]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q", endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// A non-2xx body is an HTML error page, not a gateway response; it must
	// not reach the parser as if it were one.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("endpoint %q returned status %d", endpoint, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
