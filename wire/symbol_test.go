package wire

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSymbolCode(t *testing.T) {
	buf := NewBuffer()
	buf.WriteSymbolCode("SYS")
	require.Equal(t, "5359530000000000", hex.EncodeToString(buf.Bytes()))
	code, err := buf.ReadSymbolCode()
	require.NoError(t, err)
	require.Equal(t, "SYS", code)
}

func TestSymbolCode_Truncation(t *testing.T) {
	buf := NewBuffer()
	buf.WriteSymbolCode("ABCDEFGHIJ")
	require.Equal(t, 8, buf.Len())
	code, err := buf.ReadSymbolCode()
	require.NoError(t, err)
	require.Equal(t, "ABCDEFGH", code)
}

func TestSymbol_Encoding(t *testing.T) {
	buf := NewBuffer()
	buf.WriteSymbol(Symbol{Code: "SYS", Precision: 4})
	require.Equal(t, "0453595300000000", hex.EncodeToString(buf.Bytes()))
	sym, err := buf.ReadSymbol()
	require.NoError(t, err)
	require.Equal(t, Symbol{Code: "SYS", Precision: 4}, sym)
}

func TestParseSymbol(t *testing.T) {
	sym, err := ParseSymbol("4,SYS")
	require.NoError(t, err)
	require.Equal(t, Symbol{Code: "SYS", Precision: 4}, sym)
	require.Equal(t, "4,SYS", sym.String())

	_, err = ParseSymbol("SYS")
	require.Equal(t, ErrMalformedAsset, errors.Cause(err))
	_, err = ParseSymbol("x,SYS")
	require.Equal(t, ErrMalformedAsset, errors.Cause(err))
}

func TestSymbol_Underrun(t *testing.T) {
	buf := NewReadBuffer([]byte{0x04, 0x53})
	_, err := buf.ReadSymbol()
	require.Equal(t, ErrBufferUnderrun, err)
}
