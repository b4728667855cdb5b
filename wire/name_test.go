package wire

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName_Encoding(t *testing.T) {
	vectors := map[string]string{
		"alice":         "0000000000855c34",
		"bob":           "0000000000000e3d",
		"eosio":         "0000000000ea3055",
		"eosio.token":   "00a6823403ea3055",
		"":              "0000000000000000",
		"zzzzzzzzzzzzj": "ffffffffffffffff",
	}
	for name, expected := range vectors {
		buf := NewBuffer()
		buf.WriteName(name)
		require.Equal(t, expected, hex.EncodeToString(buf.Bytes()), "name %q", name)
	}
}

func TestName_RoundTrip(t *testing.T) {
	for _, name := range []string{"alice", "bob", "a", "abc.def", "12345abcdefgj", "eosio.token"} {
		buf := NewBuffer()
		buf.WriteName(name)
		decoded, err := buf.ReadName()
		require.NoError(t, err)
		require.Equal(t, name, decoded)
	}
}

func TestName_TrimsTrailingDots(t *testing.T) {
	require.Equal(t, "abc", NameToString(StringToName("abc......")))
}

func TestName_ThirteenDotSentinel(t *testing.T) {
	sentinel := "............."
	require.Equal(t, uint64(0), StringToName(sentinel))
	require.Equal(t, sentinel, NameToString(0))
	// sentinel round-trips verbatim
	require.Equal(t, sentinel, NameToString(StringToName(sentinel)))
}

func TestName_DecodeEncodeReproducesBytes(t *testing.T) {
	inputs := []string{
		"0000000000855c34",
		"00a6823403ea3055",
		"ffffffffffffffff",
		"0100000000000000",
	}
	for _, input := range inputs {
		raw, err := hex.DecodeString(input)
		require.NoError(t, err)
		buf := NewReadBuffer(raw)
		decoded, err := buf.ReadName()
		require.NoError(t, err)
		out := NewBuffer()
		out.WriteName(decoded)
		require.Equal(t, input, hex.EncodeToString(out.Bytes()))
	}
}

func TestName_InvalidCharactersMapToDot(t *testing.T) {
	// '9' and uppercase have no code and collapse to zero bits
	require.Equal(t, StringToName("a.c"), StringToName("a9c"))
	require.Equal(t, StringToName("a.c"), StringToName("aZc"))
}

func TestName_Underrun(t *testing.T) {
	buf := NewReadBuffer([]byte{0x01, 0x02})
	_, err := buf.ReadName()
	require.Equal(t, ErrBufferUnderrun, err)
}
