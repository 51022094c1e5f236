package bot

import "context"

// Responder is the surface a chat framework implements to deliver command
// results. The bot never formats Discord-specific payloads itself.
type Responder interface {
	// Say delivers a normal reply.
	Say(ctx context.Context, msg string) error

	// SayError delivers a failure reply.
	SayError(ctx context.Context, msg string) error
}

// Respond reports a command outcome through r: the success message when err
// is nil, otherwise the user-facing translation of err.
func Respond(ctx context.Context, r Responder, success string, err error) error {
	if err == nil {
		return r.Say(ctx, success)
	}
	return r.SayError(ctx, UserMessage(err))
}
