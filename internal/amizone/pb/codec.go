package pb

import "google.golang.org/grpc/encoding"

// Codec serializes the messages in this package for gRPC transport. It
// speaks standard proto wire format, so the server side needs no special
// handling.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(message)
	if !ok {
		return nil, unexpectedType(v)
	}
	return m.marshal(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(message)
	if !ok {
		return unexpectedType(v)
	}
	return m.unmarshal(data)
}

func (Codec) Name() string { return "proto" }
