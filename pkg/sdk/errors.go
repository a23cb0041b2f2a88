package hooprelay

import "fmt"

// APIError is returned when the proxy answers with a non-2xx status.
// Body holds the response body verbatim, which for relayed endpoints is
// the upstream provider's own error payload.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hooprelay: status %d: %s", e.StatusCode, e.Body)
}
