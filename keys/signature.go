package keys

import "github.com/pkg/errors"

// Signature is a 65-byte compact signature plus its curve tag.
type Signature struct {
	Type KeyType
	Data []byte
}

// SignatureFromString parses the prefixed "SIG_K1_…"/"SIG_R1_…" form.
// Signatures have no legacy textual form.
func SignatureFromString(s string) (Signature, error) {
	label, rest, ok := splitPrefixed(s, "SIG")
	if !ok {
		return Signature{}, errors.Errorf("keys: unrecognized signature format %q", s)
	}
	keyType, err := keyTypeFromLabel(label)
	if err != nil {
		return Signature{}, err
	}
	data, err := stringToKey(rest, SignatureDataSize, label)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Type: keyType, Data: data}, nil
}

// String returns the prefixed form, e.g. "SIG_K1_…".
func (s Signature) String() string {
	label := s.Type.String()
	return keyToString(s.Data, label, "SIG_"+label+"_")
}
