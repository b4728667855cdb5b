package keys

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

const legacyPublicKeyPrefix = "EOS"

// PublicKey is a compressed 33-byte public key plus its curve tag.
type PublicKey struct {
	Type KeyType
	Data []byte
}

// PublicKeyFromString parses either the legacy "EOS…" form or the
// prefixed "PUB_K1_…"/"PUB_R1_…" form.
func PublicKeyFromString(s string) (PublicKey, error) {
	if label, rest, ok := splitPrefixed(s, "PUB"); ok {
		keyType, err := keyTypeFromLabel(label)
		if err != nil {
			return PublicKey{}, err
		}
		data, err := stringToKey(rest, PublicKeyDataSize, label)
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKey{Type: keyType, Data: data}, nil
	}
	if len(s) > len(legacyPublicKeyPrefix) && s[:len(legacyPublicKeyPrefix)] == legacyPublicKeyPrefix {
		// Legacy keys checksum the bare payload and are always K1.
		data, err := stringToKey(s[len(legacyPublicKeyPrefix):], PublicKeyDataSize, "")
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKey{Type: KeyTypeK1, Data: data}, nil
	}
	return PublicKey{}, errors.Errorf("keys: unrecognized public key format %q", s)
}

// NewPublicKey validates data as a parseable compressed point when the
// curve is K1.
func NewPublicKey(keyType KeyType, data []byte) (PublicKey, error) {
	if len(data) != PublicKeyDataSize {
		return PublicKey{}, errors.Errorf("keys: public key must be %d bytes", PublicKeyDataSize)
	}
	if keyType == KeyTypeK1 {
		if _, err := btcec.ParsePubKey(data, btcec.S256()); err != nil {
			return PublicKey{}, errors.Wrap(err, "keys: invalid secp256k1 point")
		}
	}
	return PublicKey{Type: keyType, Data: data}, nil
}

// String returns the prefixed form, e.g. "PUB_K1_…".
func (k PublicKey) String() string {
	label := k.Type.String()
	return keyToString(k.Data, label, "PUB_"+label+"_")
}

// LegacyString returns the "EOS…" form. Only K1 keys have one.
func (k PublicKey) LegacyString() (string, error) {
	if k.Type != KeyTypeK1 {
		return "", errors.Errorf("keys: no legacy form for %s public keys", k.Type)
	}
	return keyToString(k.Data, "", legacyPublicKeyPrefix), nil
}
