package amizone

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrInvalidArgument rejects requests before they reach the wire: malformed
// MAC addresses, out-of-range ratings, impossible dates.
var ErrInvalidArgument = errors.New("amizone: invalid argument")

// StatusCode extracts the upstream gRPC code from an error returned by a
// Client call. Non-status errors (context cancellation, local validation)
// map to codes.Unknown.
func StatusCode(err error) codes.Code {
	s, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return s.Code()
}

// IsUnauthenticated reports whether the upstream rejected the stamped
// credential token.
func IsUnauthenticated(err error) bool {
	return StatusCode(err) == codes.Unauthenticated
}

// IsUnavailable reports whether the upstream service could not be reached
// or answered that it is down.
func IsUnavailable(err error) bool {
	return StatusCode(err) == codes.Unavailable
}

// IsNotFound reports an upstream "no such resource" answer.
func IsNotFound(err error) bool {
	return StatusCode(err) == codes.NotFound
}
