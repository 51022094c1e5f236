package credentials

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/argon2"
)

// GenerateKey returns a fresh random AES-256 key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("credentials: generate key: %w", err)
	}
	return key, nil
}

// KeyFromBase64 decodes a standard-base64 AES-256 key.
func KeyFromBase64(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("credentials: bad key encoding: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("credentials: key must be %d bytes, got %d", KeySize, len(key))
	}
	return key, nil
}

// KeyFromFile reads a base64-encoded key from path.
func KeyFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("credentials: read key file: %w", err)
	}
	return KeyFromBase64(string(data))
}

// DeriveKey derives an AES-256 key from a passphrase and salt with argon2id
// (time=1, memory=64MiB, threads=4). Deterministic for fixed inputs, so a
// deployment can reconstruct its key from the passphrase instead of storing
// raw key material.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// KeySource describes where the AES-GCM key comes from. Exactly one of File,
// Env or Passphrase is consulted, in that order.
type KeySource struct {
	// File is a path to a base64-encoded key file.
	File string
	// Env is the name of an environment variable holding a base64 key.
	Env string
	// Passphrase and Salt feed DeriveKey when no stored key is configured.
	Passphrase string
	Salt       string
}

// Load resolves the key material. The returned key lives in process memory
// only for the lifetime of the codec.
func (s KeySource) Load() ([]byte, error) {
	switch {
	case s.File != "":
		return KeyFromFile(s.File)
	case s.Env != "":
		v, ok := os.LookupEnv(s.Env)
		if !ok {
			return nil, fmt.Errorf("credentials: environment variable %s not set", s.Env)
		}
		return KeyFromBase64(v)
	case s.Passphrase != "":
		if s.Salt == "" {
			return nil, fmt.Errorf("credentials: passphrase key source requires a salt")
		}
		return DeriveKey([]byte(s.Passphrase), []byte(s.Salt)), nil
	default:
		return nil, fmt.Errorf("credentials: no key source configured")
	}
}
