package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
)

// Memory is an in-process Store keeping tokens in a mutex-guarded map. It
// follows the same token-only, self-healing semantics as Postgres and backs
// tests and single-shard dev runs that have no database.
type Memory struct {
	codec  credentials.Codec
	legacy credentials.Codec

	mu     sync.Mutex
	tokens map[string]string
}

func NewMemory(codec credentials.Codec) *Memory {
	return &Memory{
		codec:  codec,
		legacy: credentials.BasicCodec{},
		tokens: make(map[string]string),
	}
}

func (s *Memory) CreateOrGet(ctx context.Context, identity, username, password string) (*credentials.Record, error) {
	fresh, err := credentials.NewRecord(s.codec, identity, username, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.tokens[identity]; ok {
		return credentials.RecordFromToken(s.codec, identity, token)
	}
	s.tokens[identity] = fresh.Token()
	return fresh, nil
}

func (s *Memory) Lookup(ctx context.Context, identity string) (*credentials.Record, error) {
	s.mu.Lock()
	token, ok := s.tokens[identity]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}
	return credentials.RecordFromToken(s.codec, identity, token)
}

func (s *Memory) Update(ctx context.Context, identity, username, password string) (*credentials.Record, error) {
	fresh, err := credentials.NewRecord(s.codec, identity, username, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[identity]
	if !ok {
		return nil, nil
	}
	prev, err := s.decodeStored(identity, token)
	if err != nil {
		return nil, err
	}
	s.tokens[identity] = fresh.Token()
	return prev, nil
}

func (s *Memory) Forget(ctx context.Context, identity string) (*credentials.Record, error) {
	s.mu.Lock()
	token, ok := s.tokens[identity]
	if ok {
		delete(s.tokens, identity)
	}
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}
	return s.decodeStored(identity, token)
}

// Seed installs a raw token for identity, bypassing the codec. Tests use it
// to plant legacy-format rows.
func (s *Memory) Seed(identity, token string) {
	s.mu.Lock()
	s.tokens[identity] = token
	s.mu.Unlock()
}

// decodeStored mirrors the Postgres self-heal: one legacy retry, keyed on
// ErrLegacyFormat only.
func (s *Memory) decodeStored(identity, token string) (*credentials.Record, error) {
	rec, err := credentials.RecordFromToken(s.codec, identity, token)
	if errors.Is(err, credentials.ErrLegacyFormat) {
		return credentials.RecordFromToken(s.legacy, identity, token)
	}
	return rec, err
}
