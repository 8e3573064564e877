package api

import "fmt"

// NetworkError wraps a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response. Message carries the server's
// structured error when the body was JSON with an "error" field, else a
// generic description.
type HTTPError struct {
	Message string
	Body    string
	Status  int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// UserMessage returns the best text to surface in a notification.
func (e *HTTPError) UserMessage() string {
	return e.Message
}

// DecodeError is a 2xx response whose body could not be parsed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UserMessage extracts the most specific user-facing text from an API
// error, falling back to the supplied generic message.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if httpErr, ok := asHTTPError(err); ok && httpErr.Message != "" {
		return httpErr.Message
	}
	return fallback
}
