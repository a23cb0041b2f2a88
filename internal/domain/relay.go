package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Result is an opaque relay outcome from an upstream provider. Body is
// relayed byte-for-byte; the proxy never reshapes upstream payloads.
type Result struct {
	StatusCode int
	Body       json.RawMessage
}

// OK reports whether the upstream answered with HTTP 200.
func (r Result) OK() bool { return r.StatusCode == http.StatusOK }

// ResultFromUpstream builds a relay Result for a non-200 upstream response.
// The upstream body is kept when it is parseable JSON; otherwise a generic
// error payload carrying the status code is synthesized.
func ResultFromUpstream(status int, body []byte) Result {
	if len(body) > 0 && json.Valid(body) {
		return Result{StatusCode: status, Body: body}
	}
	synthesized, _ := json.Marshal(map[string]string{
		"error": fmt.Sprintf("API returned %d", status),
	})
	return Result{StatusCode: status, Body: synthesized}
}
