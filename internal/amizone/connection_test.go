package amizone

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConnection_AcquireRelease(t *testing.T) {
	conn := NewConnection(nil, nil)

	release, err := conn.acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	release()

	// Reusable after release.
	release, err = conn.acquire(context.Background())
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	release()
}

func TestConnection_WaiterGivesUpOnCancel(t *testing.T) {
	conn := NewConnection(nil, nil)

	release, err := conn.acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := conn.acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded while holder keeps the slot, got %v", err)
	}

	// The abandoned waiter must not have poisoned the slot.
	release()
	release, err = conn.acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire after abandoned waiter: %v", err)
	}
	release()
}

func TestConnection_CancelledContextFailsFast(t *testing.T) {
	conn := NewConnection(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := conn.acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want Canceled, got %v", err)
	}
}

func TestConnection_CloseWithoutChannel(t *testing.T) {
	conn := NewConnection(nil, nil)
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
