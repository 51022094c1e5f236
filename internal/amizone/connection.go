package amizone

import (
	"context"
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Connection is the single shared handle to the upstream channel. It is a
// process-wide bottleneck on purpose: at most one request is in flight
// upstream at any moment, for every user of the bot.
//
// The lock is a one-slot channel rather than a sync.Mutex so that waiters
// suspend on their context: a caller abandoned mid-wait simply stops
// waiting, and the handle stays usable for everyone behind it.
type Connection struct {
	slot chan struct{}
	svc  Service
	cc   *grpc.ClientConn
}

// NewConnection wraps an already-built Service. cc may be nil when the
// service is not backed by a gRPC channel (tests).
func NewConnection(svc Service, cc *grpc.ClientConn) *Connection {
	return &Connection{
		slot: make(chan struct{}, 1),
		svc:  svc,
		cc:   cc,
	}
}

// Dial creates the upstream gRPC channel. Failure here is fatal to process
// bootstrap, not to any single request.
func Dial(addr string, useTLS bool) (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if useTLS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	cc, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("amizone: connect %s: %w", addr, err)
	}
	return cc, nil
}

// Connect dials addr and wraps the channel in a Connection, building the
// Service through the supplied factory.
func Connect(addr string, useTLS bool, build func(*grpc.ClientConn) Service) (*Connection, error) {
	cc, err := Dial(addr, useTLS)
	if err != nil {
		return nil, err
	}
	return NewConnection(build(cc), cc), nil
}

// acquire takes the connection slot, or gives up when ctx is done. The
// returned release must be called on every exit path; it never blocks.
func (c *Connection) acquire(ctx context.Context) (release func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case c.slot <- struct{}{}:
		return func() { <-c.slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close tears down the underlying channel, if any.
func (c *Connection) Close() error {
	if c.cc == nil {
		return nil
	}
	return c.cc.Close()
}
