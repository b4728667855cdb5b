package keys

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// wifVersion is the version byte prepended to legacy WIF private keys.
const wifVersion = 0x80

// PrivateKey is a raw 32-byte private key plus its curve tag.
type PrivateKey struct {
	Type KeyType
	Data []byte
}

// PrivateKeyFromString parses either the prefixed "PVT_K1_…" form or a
// legacy WIF string.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	if label, rest, ok := splitPrefixed(s, "PVT"); ok {
		keyType, err := keyTypeFromLabel(label)
		if err != nil {
			return PrivateKey{}, err
		}
		data, err := stringToKey(rest, PrivateKeyDataSize, label)
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{Type: keyType, Data: data}, nil
	}
	return privateKeyFromWIF(s)
}

// privateKeyFromWIF decodes a base58check string: one version byte,
// 32 key bytes, and a double-SHA256 checksum. WIF keys are always K1.
func privateKeyFromWIF(s string) (PrivateKey, error) {
	whole, err := base58.Decode(s)
	if err != nil {
		return PrivateKey{}, errors.Wrap(err, "keys: invalid base58")
	}
	if len(whole) != 1+PrivateKeyDataSize+4 {
		return PrivateKey{}, errors.Errorf("keys: invalid WIF length %d", len(whole))
	}
	if whole[0] != wifVersion {
		return PrivateKey{}, errors.Errorf("keys: invalid WIF version %#x", whole[0])
	}
	payload := whole[:1+PrivateKeyDataSize]
	if !bytes.Equal(sha256dChecksum(payload), whole[1+PrivateKeyDataSize:]) {
		return PrivateKey{}, ErrChecksumMismatch
	}
	return PrivateKey{Type: KeyTypeK1, Data: payload[1:]}, nil
}

// String returns the prefixed form, e.g. "PVT_K1_…".
func (k PrivateKey) String() string {
	label := k.Type.String()
	return keyToString(k.Data, label, "PVT_"+label+"_")
}

// LegacyString returns the WIF form. Only K1 keys have one.
func (k PrivateKey) LegacyString() (string, error) {
	if k.Type != KeyTypeK1 {
		return "", errors.Errorf("keys: no legacy form for %s private keys", k.Type)
	}
	whole := make([]byte, 0, 1+PrivateKeyDataSize+4)
	whole = append(whole, wifVersion)
	whole = append(whole, k.Data...)
	whole = append(whole, sha256dChecksum(whole)...)
	return base58.Encode(whole), nil
}

// Public derives the compressed public key. Only implemented for K1,
// where the secp256k1 math comes from btcec.
func (k PrivateKey) Public() (PublicKey, error) {
	if k.Type != KeyTypeK1 {
		return PublicKey{}, errors.Errorf("keys: cannot derive public key for %s", k.Type)
	}
	if len(k.Data) != PrivateKeyDataSize {
		return PublicKey{}, errors.Errorf("keys: private key must be %d bytes", PrivateKeyDataSize)
	}
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), k.Data)
	return PublicKey{Type: KeyTypeK1, Data: pub.SerializeCompressed()}, nil
}
