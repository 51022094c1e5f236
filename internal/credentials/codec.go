// Package credentials implements the credential token codec and the
// credential record stored for every logged-in user.
//
// A token is the single opaque string form of a (username, password) pair.
// Two interchangeable codecs exist: AESGCMCodec (authenticated encryption,
// the default) and BasicCodec (reversible base64 encoding, legacy). A
// deployment selects exactly one codec at startup and uses it for the
// lifetime of the store; there is no format auto-detection on the read path.
package credentials

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// NonceSize is the AES-GCM nonce width in bytes, per NIST SP 800-38D.
	NonceSize = 12

	// nonceSegmentLen is the length of the base64 (padded) nonce segment
	// that prefixes every AES-GCM token: ((12+2)/3)*4 = 16 characters.
	nonceSegmentLen = ((NonceSize + 2) / 3) * 4

	// KeySize is the AES-256 key width in bytes.
	KeySize = 32

	// basicPrefix mimics the HTTP Basic authorization scheme marker used
	// by the legacy token format.
	basicPrefix = "Basic "

	separator = ':'
)

var (
	// ErrDecode reports a malformed, undecryptable or tampered token.
	// Callers should treat the stored credential as invalid and prompt
	// for re-entry.
	ErrDecode = errors.New("credentials: malformed token")

	// ErrLegacyFormat reports a token written by the legacy reversible
	// codec when a strict AES-GCM decode was requested. It is the only
	// error that store operations may answer with a legacy-codec retry.
	ErrLegacyFormat = errors.New("credentials: token in legacy format")

	// ErrUsernameSeparator rejects usernames containing ':'. Tokens are
	// split at the first colon on decode, so a colon in the username
	// would corrupt the round trip. Passwords may contain colons.
	ErrUsernameSeparator = errors.New("credentials: username must not contain ':'")
)

// Codec converts between a (username, password) pair and an opaque token.
// Encode and Decode are inverses for every valid pair. Decode is pure and
// never panics on untrusted input.
type Codec interface {
	Encode(username, password string) (string, error)
	Decode(token string) (username, password string, err error)
}

// NewCodec builds the codec named by strategy: "aesgcm" requires a
// KeySize-byte key, "basic" ignores the key.
func NewCodec(strategy string, key []byte) (Codec, error) {
	switch strategy {
	case "aesgcm":
		return NewAESGCMCodec(key)
	case "basic":
		return BasicCodec{}, nil
	default:
		return nil, fmt.Errorf("credentials: unknown codec strategy %q", strategy)
	}
}

// AESGCMCodec encrypts credential pairs with AES-256-GCM. The token wire
// format is base64std(nonce) || base64std(ciphertext); the nonce segment is
// always exactly 16 characters. A fresh random nonce is drawn for every
// Encode, so encoding the same pair twice yields different tokens.
type AESGCMCodec struct {
	aead cipher.AEAD
}

// NewAESGCMCodec builds a codec around key. The key is loaded once at
// process start and held in memory only; losing it makes every stored
// token undecodable, there is no rotation path.
func NewAESGCMCodec(key []byte) (*AESGCMCodec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("credentials: key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}
	return &AESGCMCodec{aead: aead}, nil
}

func (c *AESGCMCodec) Encode(username, password string) (string, error) {
	plaintext, err := join(username, password)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("credentials: nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(nonce) +
		base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (c *AESGCMCodec) Decode(token string) (string, string, error) {
	if strings.HasPrefix(token, basicPrefix) {
		return "", "", ErrLegacyFormat
	}
	if len(token) <= nonceSegmentLen {
		return "", "", fmt.Errorf("%w: shorter than nonce segment", ErrDecode)
	}

	nonce, err := base64.StdEncoding.DecodeString(token[:nonceSegmentLen])
	if err != nil {
		return "", "", fmt.Errorf("%w: bad nonce segment", ErrDecode)
	}
	if len(nonce) != NonceSize {
		return "", "", fmt.Errorf("%w: nonce is %d bytes, want %d", ErrDecode, len(nonce), NonceSize)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(token[nonceSegmentLen:])
	if err != nil {
		return "", "", fmt.Errorf("%w: bad ciphertext segment", ErrDecode)
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key or tampered data; the AEAD tag did not verify.
		return "", "", fmt.Errorf("%w: authentication failed", ErrDecode)
	}

	return split(plaintext)
}

// BasicCodec is the legacy reversible encoding:
// "Basic " + base64url(username + ":" + password). It offers no
// confidentiality at rest; anyone who can read the store can recover the
// pair. Retained for decoding rows written before the AES-GCM generation
// and for deployments that explicitly opt out of encryption.
type BasicCodec struct{}

func (BasicCodec) Encode(username, password string) (string, error) {
	plaintext, err := join(username, password)
	if err != nil {
		return "", err
	}
	return basicPrefix + base64.URLEncoding.EncodeToString(plaintext), nil
}

func (BasicCodec) Decode(token string) (string, string, error) {
	// The prefix is optional: the oldest rows were stored without it.
	trimmed := strings.TrimPrefix(token, basicPrefix)

	decoded, err := base64.URLEncoding.DecodeString(trimmed)
	if err != nil {
		return "", "", fmt.Errorf("%w: bad base64", ErrDecode)
	}
	return split(decoded)
}

// join serializes a pair as "<username>:<password>". The username must not
// contain the separator; the password may.
func join(username, password string) ([]byte, error) {
	if strings.ContainsRune(username, separator) {
		return nil, ErrUsernameSeparator
	}
	return []byte(username + string(separator) + password), nil
}

// split divides plaintext at the first ':' byte. Splitting at the first
// occurrence only is what lets passwords contain colons.
func split(plaintext []byte) (string, string, error) {
	i := bytes.IndexByte(plaintext, separator)
	if i < 0 {
		return "", "", fmt.Errorf("%w: missing separator", ErrDecode)
	}
	return string(plaintext[:i]), string(plaintext[i+1:]), nil
}
