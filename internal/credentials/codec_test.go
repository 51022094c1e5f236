package credentials

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := bytes.Repeat([]byte{0x2a}, KeySize)
	return key
}

func newTestAESGCM(t *testing.T) *AESGCMCodec {
	t.Helper()
	c, err := NewAESGCMCodec(testKey(t))
	if err != nil {
		t.Fatalf("NewAESGCMCodec: %v", err)
	}
	return c
}

func TestAESGCM_RoundTrip(t *testing.T) {
	c := newTestAESGCM(t)

	cases := []struct{ username, password string }{
		{"sampleuser", "$196*(^%@1DSjDSx@"},
		{"user", "a:b:c"}, // split only at the first colon
		{"u", ""},
		{"üñïçôdé", "päss:wörd"},
	}

	for _, tc := range cases {
		token, err := c.Encode(tc.username, tc.password)
		if err != nil {
			t.Fatalf("Encode(%q, %q): %v", tc.username, tc.password, err)
		}
		u, p, err := c.Decode(token)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if u != tc.username || p != tc.password {
			t.Errorf("round trip mismatch: got (%q, %q), want (%q, %q)", u, p, tc.username, tc.password)
		}
	}
}

func TestAESGCM_NonceSegmentIsFixedWidth(t *testing.T) {
	c := newTestAESGCM(t)

	token, err := c.Encode("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if nonceSegmentLen != 16 {
		t.Fatalf("nonce segment length = %d, want 16", nonceSegmentLen)
	}
	if len(token) <= nonceSegmentLen {
		t.Fatalf("token too short: %q", token)
	}
}

func TestAESGCM_NonceUniqueness(t *testing.T) {
	c := newTestAESGCM(t)

	t1, err := c.Encode("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := c.Encode("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if t1 == t2 {
		t.Fatal("two encodings of the same pair produced the same token")
	}

	for _, token := range []string{t1, t2} {
		u, p, err := c.Decode(token)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if u != "alice" || p != "pw" {
			t.Errorf("decoded (%q, %q), want (alice, pw)", u, p)
		}
	}
}

func TestAESGCM_TamperDetection(t *testing.T) {
	c := newTestAESGCM(t)

	token, err := c.Encode("alice", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	// Flip every position in the ciphertext segment in turn; none may
	// decode to a still-valid looking pair.
	for i := nonceSegmentLen; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == token {
			continue
		}
		_, _, err := c.Decode(string(mutated))
		if err == nil {
			t.Fatalf("tampered token at offset %d decoded successfully", i)
		}
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("tampered token at offset %d: got %v, want ErrDecode", i, err)
		}
	}
}

func TestAESGCM_DecodeMalformed(t *testing.T) {
	c := newTestAESGCM(t)

	cases := map[string]string{
		"empty":          "",
		"too short":      "AAAA",
		"bad nonce b64":  "!!!!!!!!!!!!!!!!cGF5bG9hZA==",
		"bad cipher b64": "AAAAAAAAAAAAAAAA~~~not-base64~~~",
	}

	for name, token := range cases {
		if _, _, err := c.Decode(token); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: got %v, want ErrDecode", name, err)
		}
	}
}

func TestAESGCM_WrongKeyFailsCleanly(t *testing.T) {
	c1 := newTestAESGCM(t)
	c2, err := NewAESGCMCodec(bytes.Repeat([]byte{0x07}, KeySize))
	if err != nil {
		t.Fatal(err)
	}

	token, err := c1.Encode("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := c2.Decode(token); !errors.Is(err, ErrDecode) {
		t.Fatalf("decode under wrong key: got %v, want ErrDecode", err)
	}
}

func TestAESGCM_LegacyTokenDetected(t *testing.T) {
	c := newTestAESGCM(t)

	legacy, err := BasicCodec{}.Encode("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Decode(legacy); !errors.Is(err, ErrLegacyFormat) {
		t.Fatalf("got %v, want ErrLegacyFormat", err)
	}
}

func TestBasic_RoundTrip(t *testing.T) {
	c := BasicCodec{}

	token, err := c.Encode("user", "a:b:c")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(token, "Basic ") {
		t.Fatalf("token %q lacks Basic prefix", token)
	}

	u, p, err := c.Decode(token)
	if err != nil {
		t.Fatal(err)
	}
	if u != "user" || p != "a:b:c" {
		t.Fatalf("got (%q, %q), want (user, a:b:c)", u, p)
	}
}

// Fixture produced by the first deployed generation of the bot, which stored
// the base64 payload without the scheme prefix.
func TestBasic_DecodeUnprefixedFixture(t *testing.T) {
	u, p, err := BasicCodec{}.Decode("c2FtcGxldXNlcjokMTk2KiheJUAxRFNqRFN4QA==")
	if err != nil {
		t.Fatal(err)
	}
	if u != "sampleuser" || p != "$196*(^%@1DSjDSx@" {
		t.Fatalf("got (%q, %q)", u, p)
	}
}

func TestBasic_DecodeMissingSeparator(t *testing.T) {
	c := BasicCodec{}
	// base64url("nocolon")
	if _, _, err := c.Decode("bm9jb2xvbg=="); !errors.Is(err, ErrDecode) {
		t.Fatalf("got %v, want ErrDecode", err)
	}
}

func TestEncode_RejectsSeparatorInUsername(t *testing.T) {
	for _, c := range []Codec{newTestAESGCM(t), BasicCodec{}} {
		if _, err := c.Encode("bad:user", "pw"); !errors.Is(err, ErrUsernameSeparator) {
			t.Errorf("%T: got %v, want ErrUsernameSeparator", c, err)
		}
	}
}

func TestNewCodec(t *testing.T) {
	if _, err := NewCodec("aesgcm", testKey(t)); err != nil {
		t.Errorf("aesgcm: %v", err)
	}
	if _, err := NewCodec("basic", nil); err != nil {
		t.Errorf("basic: %v", err)
	}
	if _, err := NewCodec("rot13", nil); err == nil {
		t.Error("unknown strategy accepted")
	}
	if _, err := NewCodec("aesgcm", []byte("short")); err == nil {
		t.Error("short key accepted")
	}
}
