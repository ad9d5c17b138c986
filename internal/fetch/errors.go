package fetch

import "fmt"

// ErrorKind classifies why a fetch attempt failed.
type ErrorKind int

const (
	// KindTransport covers connectivity, timeout and read failures, and
	// non-2xx upstream responses.
	KindTransport ErrorKind = iota + 1
	// KindDecode means the response body does not match the expected JSON
	// shape.
	KindDecode
	// KindEmptyResponse means the upstream answered 2xx with no body at
	// all, so there was nothing to decode and no transport error to
	// propagate.
	KindEmptyResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindDecode:
		return "decode error"
	case KindEmptyResponse:
		return "empty response"
	default:
		return "unknown error"
	}
}

// Error is the failure half of a fetch Result.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch posts: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
