package wire

import "strings"

const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

// charToSymbol maps a name character to its 5-bit code: a-z become
// 6-31, 1-5 become 1-5, everything else becomes 0.
func charToSymbol(c byte) uint64 {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1
	default:
		return 0
	}
}

// StringToName bit-packs up to 13 characters of s into a 64-bit value.
// The first 12 characters consume 5 bits each; the 13th consumes the
// remaining 4. Characters past the 13th are ignored.
func StringToName(s string) uint64 {
	var value uint64
	for i := 0; i <= 12; i++ {
		var c uint64
		if i < len(s) {
			c = charToSymbol(s[i])
		}
		if i < 12 {
			value |= (c & 0x1f) << uint(64-5*(i+1))
		} else {
			value |= c & 0x0f
		}
	}
	return value
}

// NameToString reverses StringToName. Trailing dots are stripped unless
// the decoded value is exactly thirteen dots, which is returned
// verbatim as a sentinel.
func NameToString(value uint64) string {
	var str [13]byte
	tmp := value
	for i := 0; i <= 12; i++ {
		if i == 0 {
			str[12] = nameCharmap[tmp&0x0f]
			tmp >>= 4
		} else {
			str[12-i] = nameCharmap[tmp&0x1f]
			tmp >>= 5
		}
	}
	s := string(str[:])
	if s == "............." {
		return s
	}
	return strings.TrimRight(s, ".")
}

// WriteName writes the packed form of s as 8 little-endian bytes.
func (b *Buffer) WriteName(s string) {
	b.WriteUint64(StringToName(s))
}

func (b *Buffer) ReadName() (string, error) {
	v, err := b.ReadUint64()
	if err != nil {
		return "", err
	}
	return NameToString(v), nil
}
