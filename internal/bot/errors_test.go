package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

func TestError_PreservesSourceAndCode(t *testing.T) {
	src := status.Error(codes.NotFound, "no datesheet yet")
	err := UpstreamError(src)

	assert.Equal(t, KindUpstream, err.Kind)
	assert.Equal(t, codes.NotFound, err.Code)
	assert.ErrorIs(t, err, src)
	assert.Contains(t, err.Error(), "upstream error")
	assert.Contains(t, err.Error(), "NotFound")
}

func TestError_DecodeWrapsSentinel(t *testing.T) {
	src := fmt.Errorf("%w: bad token", credentials.ErrDecode)
	err := DecodeError(src)

	assert.Equal(t, KindDecode, err.Kind)
	assert.ErrorIs(t, err, credentials.ErrDecode)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"bad credentials", ErrBadCredentials, "Incorrect credentials. Check your username and password and try again."},
		{"not logged in", ErrNotLoggedIn, "You are not logged in. Please log in again."},
		{"separator in username", credentials.ErrUsernameSeparator, "Usernames cannot contain a colon."},
		{"unavailable", UpstreamError(status.Error(codes.Unavailable, "down")), "Amizone is unreachable right now. Try again in a bit."},
		{"not found", UpstreamError(status.Error(codes.NotFound, "nope")), "Amizone has no data for that request."},
		{"unauthenticated", UpstreamError(status.Error(codes.Unauthenticated, "bad token")), "You are not logged in. Please log in again."},
		{"other upstream", UpstreamError(status.Error(codes.Internal, "boom")), "Amizone could not complete that request."},
		{"decode", DecodeError(credentials.ErrDecode), "Your saved login looks corrupted. Please log in again."},
		{"store", StoreError(errors.New("db error")), "Something went wrong. Please try again."},
		{"unknown", errors.New("mystery"), "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

type recordingResponder struct {
	said    []string
	errored []string
}

func (r *recordingResponder) Say(ctx context.Context, msg string) error {
	r.said = append(r.said, msg)
	return nil
}

func (r *recordingResponder) SayError(ctx context.Context, msg string) error {
	r.errored = append(r.errored, msg)
	return nil
}

func TestRespond(t *testing.T) {
	r := &recordingResponder{}
	ctx := context.Background()

	require.NoError(t, Respond(ctx, r, "logged in", nil))
	require.NoError(t, Respond(ctx, r, "unused", ErrNotLoggedIn))

	assert.Equal(t, []string{"logged in"}, r.said)
	assert.Equal(t, []string{"You are not logged in. Please log in again."}, r.errored)
}
