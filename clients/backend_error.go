package clients

import "fmt"

// BackendError carries the outcome of a failed outbound call. For an
// upstream error response StatusCode and Message reflect what the backend
// sent; for a transport-level failure (unreachable host, broken connection)
// Transport is set, StatusCode is 502 and Message is empty so no internal
// detail reaches the client.
type BackendError struct {
	StatusCode int
	Message    string
	Transport  bool
}

func (e *BackendError) Error() string {
	if e.Transport {
		return "unable to reach backend"
	}
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}
