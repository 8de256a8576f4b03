package ryanair

import "errors"

var (
	// ErrUnavailable marks a (route, date) fetch whose retries are
	// exhausted: transport failures, timeouts and 5xx responses.
	ErrUnavailable = errors.New("fare source unavailable")

	// ErrRejected marks a 4xx response; the request will never succeed
	// as issued and is not retried.
	ErrRejected = errors.New("fare source rejected request")

	// ErrBadPayload marks a response body that cannot be decoded or
	// normalized; not retried.
	ErrBadPayload = errors.New("malformed fare payload")
)

// Terminal reports whether err rules out further attempts.
func Terminal(err error) bool {
	return errors.Is(err, ErrRejected) || errors.Is(err, ErrBadPayload)
}
