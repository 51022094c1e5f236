package bot

import (
	"context"
	"sync"

	"github.com/Blonteractor/discord-amibot/internal/amizone"
	"github.com/Blonteractor/discord-amibot/internal/store"
)

// ClientCache keeps a ready client per identity so repeat commands skip the
// store round trip. Entries are evicted explicitly, on logout and on
// stored-credential auth failure; there is no TTL.
type ClientCache struct {
	store store.Store
	conn  *amizone.Connection

	mu      sync.Mutex
	clients map[string]*amizone.Client
}

func NewClientCache(st store.Store, conn *amizone.Connection) *ClientCache {
	return &ClientCache{
		store:   st,
		conn:    conn,
		clients: make(map[string]*amizone.Client),
	}
}

// GetOrCreate returns the cached client for identity, building one from the
// stored credential on a miss. Returns (nil, nil) when no credential is
// stored. Store and decode errors pass through unwrapped.
func (c *ClientCache) GetOrCreate(ctx context.Context, identity string) (*amizone.Client, error) {
	c.mu.Lock()
	if client, ok := c.clients[identity]; ok {
		c.mu.Unlock()
		return client, nil
	}
	c.mu.Unlock()

	rec, err := c.store.Lookup(ctx, identity)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	client := amizone.NewClient(rec.Token(), c.conn)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A concurrent miss may have raced us here; first insert wins so both
	// callers see the same client.
	if existing, ok := c.clients[identity]; ok {
		return existing, nil
	}
	c.clients[identity] = client
	return client, nil
}

// Put installs (or replaces) the client for identity.
func (c *ClientCache) Put(identity string, client *amizone.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clients[identity] = client
}

// Invalidate drops the cached client for identity, if any.
func (c *ClientCache) Invalidate(identity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.clients, identity)
}

// Len reports the number of cached clients.
func (c *ClientCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}
