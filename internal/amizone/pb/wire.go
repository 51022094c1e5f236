// Package pb holds the wire bindings for the upstream Amizone gRPC API.
//
// The messages are hand-maintained against amizone.proto: plain structs
// with protowire-based marshaling, dispatched through a grpc codec. This
// keeps the bindings wire-compatible with the published schema without
// committing generated code. When the schema changes, amizone.proto and
// these bindings change together.
package pb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// message is implemented by every wire type in this package.
type message interface {
	marshal(b []byte) []byte
	unmarshal(b []byte) error
}

// eachField walks a wire-format buffer and hands each field's remaining
// bytes to f. f returns how many bytes it consumed; zero means "unknown
// field", which is then skipped.
func eachField(b []byte, f func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		used, err := f(num, typ, b)
		if err != nil {
			return err
		}
		if used == 0 {
			used = protowire.ConsumeFieldValue(num, typ, b)
			if used < 0 {
				return protowire.ParseError(used)
			}
		}
		b = b[used:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

// appendMessage frames an already-marshaled submessage. Unlike the scalar
// appenders it always emits the field, so present-but-empty submessages
// survive the round trip.
func appendMessage(b []byte, num protowire.Number, inner []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeVarint(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeInt32(b []byte) (int32, int, error) {
	v, n, err := consumeVarint(b)
	return int32(v), n, err
}

// consumeSub decodes a length-delimited submessage into m.
func consumeSub(b []byte, m message) (int, error) {
	inner, n, err := consumeBytes(b)
	if err != nil {
		return 0, err
	}
	if err := m.unmarshal(inner); err != nil {
		return 0, err
	}
	return n, nil
}

func unexpectedType(v any) error {
	return fmt.Errorf("pb: unsupported message type %T", v)
}
