package bot

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"

	"github.com/Blonteractor/discord-amibot/internal/amizone"
	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

// Sentinel results of the login flow. They are user-facing conditions, not
// infrastructure failures, and are matched by callers with errors.Is.
var (
	// ErrBadCredentials reports that a fresh login attempt was rejected by
	// the upstream service. The record created for the attempt has already
	// been deleted when this is returned.
	ErrBadCredentials = errors.New("incorrect credentials")

	// ErrNotLoggedIn reports that no usable credential exists for the
	// caller. Stored credentials that upstream rejects also surface as
	// this, without being deleted.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Kind classifies a bot-level failure by its source.
type Kind int

const (
	// KindDecode: a stored token could not be decoded.
	KindDecode Kind = iota + 1
	// KindStore: the persistence backend failed.
	KindStore
	// KindUpstream: the remote service rejected or failed a request.
	KindUpstream
	// KindTransport: the upstream channel could not be established.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindStore:
		return "store"
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the closed error type crossing the bot boundary. Exactly one
// variant per failure source; Code is set only for KindUpstream.
type Error struct {
	Kind Kind
	Code codes.Code
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindUpstream {
		return fmt.Sprintf("%s error (%s): %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// DecodeError wraps a token decode failure.
func DecodeError(err error) *Error {
	return &Error{Kind: KindDecode, Err: err}
}

// StoreError wraps a persistence failure. Not-found is not a store error.
func StoreError(err error) *Error {
	return &Error{Kind: KindStore, Err: err}
}

// UpstreamError wraps a remote failure, preserving its gRPC status code.
func UpstreamError(err error) *Error {
	return &Error{Kind: KindUpstream, Code: amizone.StatusCode(err), Err: err}
}

// TransportError wraps a channel bootstrap failure. Fatal to startup, never
// produced by a single command.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// UserMessage translates err into text safe to show the end user. Raw
// error detail stays in the logs.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadCredentials):
		return "Incorrect credentials. Check your username and password and try again."
	case errors.Is(err, ErrNotLoggedIn):
		return "You are not logged in. Please log in again."
	case errors.Is(err, credentials.ErrUsernameSeparator):
		return "Usernames cannot contain a colon."
	case errors.Is(err, amizone.ErrInvalidArgument):
		return "That doesn't look right: " + err.Error()
	}

	var e *Error
	if !errors.As(err, &e) {
		return "Something went wrong. Please try again."
	}

	switch e.Kind {
	case KindUpstream:
		switch e.Code {
		case codes.Unavailable:
			return "Amizone is unreachable right now. Try again in a bit."
		case codes.NotFound:
			return "Amizone has no data for that request."
		case codes.Unauthenticated:
			return "You are not logged in. Please log in again."
		default:
			return "Amizone could not complete that request."
		}
	case KindDecode:
		return "Your saved login looks corrupted. Please log in again."
	default:
		return "Something went wrong. Please try again."
	}
}
