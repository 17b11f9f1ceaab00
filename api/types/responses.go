package types

// ErrorResponse is the JSON error body returned by the proxy. The field
// names are part of the API contract: the frontend keys off "error" and
// shows "details" when present.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse for the health check endpoint
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Upstream  map[string]string `json:"upstream,omitempty"`
}
