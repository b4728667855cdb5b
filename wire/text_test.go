package wire

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarBytes(t *testing.T) {
	buf := NewBuffer()
	buf.WriteVarBytes([]byte{0xde, 0xad})
	require.Equal(t, "02dead", hex.EncodeToString(buf.Bytes()))
	view, err := buf.ReadVarBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad}, view)

	buf = NewBuffer()
	buf.WriteVarBytes(nil)
	require.Equal(t, "00", hex.EncodeToString(buf.Bytes()))
}

func TestVarBytes_TruncatedPayload(t *testing.T) {
	buf := NewReadBuffer([]byte{0x05, 0x01})
	_, err := buf.ReadVarBytes()
	require.Equal(t, ErrBufferUnderrun, err)
}

func TestString_Encoding(t *testing.T) {
	buf := NewBuffer()
	require.NoError(t, buf.WriteString("hi"))
	require.Equal(t, "026869", hex.EncodeToString(buf.Bytes()))
	s, err := buf.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hi", s)
}

func TestString_UTF8(t *testing.T) {
	buf := NewBuffer()
	require.NoError(t, buf.WriteString("héllo ✓"))
	s, err := buf.ReadString()
	require.NoError(t, err)
	require.Equal(t, "héllo ✓", s)

	require.Equal(t, ErrInvalidText, NewBuffer().WriteString(string([]byte{0xff, 0xfe})))

	buf = NewReadBuffer([]byte{0x02, 0xff, 0xfe})
	_, err = buf.ReadString()
	require.Equal(t, ErrInvalidText, err)
}
