package interfaces

import "fmt"

// TransportError reports a failed remote charge call: the gateway was never
// reached, or rejected the request before producing a charge response body.
type TransportError struct {
	Gateway    string
	StatusCode int
	StatusText string
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport error: %s %d", e.Gateway, e.StatusText, e.StatusCode)
}

// Detail returns the human-readable error body, with a fallback when the
// collaborator sent none.
func (e *TransportError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	return "Something went wrong"
}
