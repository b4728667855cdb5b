package wire

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Symbol pairs a ticker code with its implied decimal precision. Its
// textual form is "<precision>,<code>", e.g. "4,SYS".
type Symbol struct {
	Code      string
	Precision uint8
}

func ParseSymbol(s string) (Symbol, error) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return Symbol{}, errors.Wrapf(ErrMalformedAsset, "symbol %q", s)
	}
	precision, err := strconv.ParseUint(s[:idx], 10, 8)
	if err != nil {
		return Symbol{}, errors.Wrapf(ErrMalformedAsset, "symbol %q", s)
	}
	return Symbol{
		Code:      s[idx+1:],
		Precision: uint8(precision),
	}, nil
}

func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + s.Code
}

// WriteSymbolCode writes code into a fixed 8-byte field, zero-padded
// or truncated as needed.
func (b *Buffer) WriteSymbolCode(code string) {
	var tmp [8]byte
	copy(tmp[:], code)
	b.Write(tmp[:])
}

// ReadSymbolCode reads an 8-byte field and returns the bytes up to the
// first zero.
func (b *Buffer) ReadSymbolCode() (string, error) {
	view, err := b.ReadBytes(8)
	if err != nil {
		return "", err
	}
	return trimZero(view), nil
}

// WriteSymbol writes one precision byte followed by the code
// zero-padded to 7 bytes.
func (b *Buffer) WriteSymbol(sym Symbol) {
	var tmp [8]byte
	tmp[0] = sym.Precision
	copy(tmp[1:], sym.Code)
	b.Write(tmp[:])
}

func (b *Buffer) ReadSymbol() (Symbol, error) {
	precision, err := b.ReadByte()
	if err != nil {
		return Symbol{}, err
	}
	view, err := b.ReadBytes(7)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{
		Code:      trimZero(view),
		Precision: precision,
	}, nil
}

func trimZero(view []byte) string {
	end := 0
	for end < len(view) && view[end] != 0 {
		end++
	}
	return string(view[:end])
}
