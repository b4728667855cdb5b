// Package keys converts blockchain keys and signatures between their
// textual and binary forms. Binary forms are a one-byte type tag
// followed by a fixed-size payload; textual forms are base58 with a
// RIPEMD-160 checksum, either legacy ("EOS…" public keys, WIF private
// keys) or prefixed ("PUB_K1_…", "PVT_K1_…", "SIG_K1_…").
package keys

import (
	"bytes"
	"crypto/sha256"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// KeyType is the wire tag identifying a key's curve.
type KeyType uint8

const (
	KeyTypeK1 KeyType = 0
	KeyTypeR1 KeyType = 1
)

const (
	PublicKeyDataSize  = 33
	PrivateKeyDataSize = 32
	SignatureDataSize  = 65
)

var ErrChecksumMismatch = errors.New("keys: checksum mismatch")

func (t KeyType) String() string {
	switch t {
	case KeyTypeK1:
		return "K1"
	case KeyTypeR1:
		return "R1"
	default:
		return "unknown"
	}
}

func keyTypeFromLabel(label string) (KeyType, error) {
	switch label {
	case "K1":
		return KeyTypeK1, nil
	case "R1":
		return KeyTypeR1, nil
	default:
		return 0, errors.Errorf("keys: unsupported key type %q", label)
	}
}

func ripemdChecksum(data []byte, suffix string) []byte {
	h := ripemd160.New()
	h.Write(data)
	h.Write([]byte(suffix))
	return h.Sum(nil)[:4]
}

func sha256dChecksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// stringToKey decodes a base58 string carrying size payload bytes and
// a 4-byte RIPEMD-160 checksum salted with suffix.
func stringToKey(s string, size int, suffix string) ([]byte, error) {
	whole, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "keys: invalid base58")
	}
	if len(whole) != size+4 {
		return nil, errors.Errorf("keys: expected %d payload bytes, got %d", size, len(whole)-4)
	}
	data := whole[:size]
	if !bytes.Equal(ripemdChecksum(data, suffix), whole[size:]) {
		return nil, ErrChecksumMismatch
	}
	return data, nil
}

func keyToString(data []byte, suffix, prefix string) string {
	whole := make([]byte, 0, len(data)+4)
	whole = append(whole, data...)
	whole = append(whole, ripemdChecksum(data, suffix)...)
	return prefix + base58.Encode(whole)
}

// splitPrefixed strips a "XXX_K1_"-style prefix and returns the type
// label and the base58 remainder.
func splitPrefixed(s, kind string) (string, string, bool) {
	if !strings.HasPrefix(s, kind+"_") {
		return "", "", false
	}
	rest := s[len(kind)+1:]
	idx := strings.IndexByte(rest, '_')
	if idx < 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}
