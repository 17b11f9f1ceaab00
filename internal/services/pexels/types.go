package pexels

import "fmt"

// SearchResult holds a successful upstream response: the status code and
// the JSON body exactly as Pexels returned it. The body is relayed to the
// caller without re-encoding.
type SearchResult struct {
	StatusCode int
	Body       []byte
}

// UpstreamError is returned when the Pexels API answered with a non-2xx
// status. The raw body is kept so the handler can forward it.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pexels API returned status %d", e.StatusCode)
}

// TransportError is returned when the exchange with the Pexels API could
// not complete at all: DNS failure, connection refused, timeout, TLS.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not connect to pexels API: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
