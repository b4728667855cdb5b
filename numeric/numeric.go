// Package numeric converts between decimal strings and fixed-width
// little-endian binary integers. It backs the 64- and 128-bit ABI
// integer types and asset amounts, which are exact and therefore
// cannot ride on float64.
package numeric

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidNumber is returned for input that is not a plain run
	// of decimal digits with an optional leading minus.
	ErrInvalidNumber = errors.New("numeric: invalid number")

	// ErrNumberOutOfRange is returned when a value does not fit the
	// requested binary width.
	ErrNumberOutOfRange = errors.New("numeric: number is out of range")
)

func parseDigits(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrInvalidNumber
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, errors.Wrapf(ErrInvalidNumber, "%q", s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	return n, nil
}

func littleEndian(n *big.Int, size int) []byte {
	out := make([]byte, size)
	be := n.Bytes()
	for i := 0; i < len(be); i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}

func fromLittleEndian(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := 0; i < len(b); i++ {
		be[i] = b[len(b)-1-i]
	}
	return new(big.Int).SetBytes(be)
}

// DecimalToBinary converts an unsigned decimal string into size
// little-endian bytes.
func DecimalToBinary(size int, s string) ([]byte, error) {
	n, err := parseDigits(s)
	if err != nil {
		return nil, err
	}
	if n.BitLen() > size*8 {
		return nil, errors.Wrapf(ErrNumberOutOfRange, "%q exceeds %d bytes", s, size)
	}
	return littleEndian(n, size), nil
}

// SignedDecimalToBinary converts a decimal string with an optional
// leading minus into size little-endian two's-complement bytes.
func SignedDecimalToBinary(size int, s string) ([]byte, error) {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	n, err := parseDigits(s)
	if err != nil {
		return nil, err
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(size*8-1))
	if negative {
		// -2^(bits-1) is representable, so the magnitude may equal
		// the bound.
		if n.Cmp(bound) > 0 {
			return nil, errors.Wrapf(ErrNumberOutOfRange, "-%s exceeds %d bytes", s, size)
		}
		n.Sub(new(big.Int).Lsh(bound, 1), n)
		// -0 encodes as zero.
		n.Mod(n, new(big.Int).Lsh(bound, 1))
	} else if n.Cmp(bound) >= 0 {
		return nil, errors.Wrapf(ErrNumberOutOfRange, "%q exceeds %d bytes", s, size)
	}
	return littleEndian(n, size), nil
}

// BinaryToDecimal converts little-endian bytes into an unsigned
// decimal string, left-padded with zeros to at least minDigits digits.
func BinaryToDecimal(b []byte, minDigits int) string {
	return pad(fromLittleEndian(b).String(), minDigits)
}

// SignedBinaryToDecimal converts little-endian two's-complement bytes
// into a decimal string. The magnitude is left-padded with zeros to at
// least minDigits digits; a leading minus precedes the padding.
func SignedBinaryToDecimal(b []byte, minDigits int) string {
	n := fromLittleEndian(b)
	bound := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8-1))
	if n.Cmp(bound) >= 0 {
		n.Sub(n, new(big.Int).Lsh(bound, 1))
		return "-" + pad(new(big.Int).Neg(n).String(), minDigits)
	}
	return pad(n.String(), minDigits)
}

func pad(s string, minDigits int) string {
	for len(s) < minDigits {
		s = "0" + s
	}
	return s
}
