package numeric

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecimalToBinary(t *testing.T) {
	vectors := []struct {
		size     int
		in       string
		expected string
	}{
		{8, "0", "0000000000000000"},
		{8, "1", "0100000000000000"},
		{8, "10000", "1027000000000000"},
		{8, "18446744073709551615", "ffffffffffffffff"},
		{16, "1", "01000000000000000000000000000000"},
		{16, "340282366920938463463374607431768211455", "ffffffffffffffffffffffffffffffff"},
	}
	for _, v := range vectors {
		bin, err := DecimalToBinary(v.size, v.in)
		require.NoError(t, err)
		require.Equal(t, v.expected, hex.EncodeToString(bin))
		require.Equal(t, v.in, BinaryToDecimal(bin, 1))
	}
}

func TestDecimalToBinary_Errors(t *testing.T) {
	_, err := DecimalToBinary(8, "")
	require.Equal(t, ErrInvalidNumber, errors.Cause(err))
	_, err = DecimalToBinary(8, "12x4")
	require.Equal(t, ErrInvalidNumber, errors.Cause(err))
	_, err = DecimalToBinary(8, "-5")
	require.Equal(t, ErrInvalidNumber, errors.Cause(err))
	_, err = DecimalToBinary(8, "18446744073709551616")
	require.Equal(t, ErrNumberOutOfRange, errors.Cause(err))
}

func TestSignedDecimalToBinary(t *testing.T) {
	vectors := []struct {
		size     int
		in       string
		expected string
	}{
		{8, "0", "0000000000000000"},
		{8, "-1", "ffffffffffffffff"},
		{8, "-5", "fbffffffffffffff"},
		{8, "9223372036854775807", "ffffffffffffff7f"},
		{8, "-9223372036854775808", "0000000000000080"},
		{16, "-1", "ffffffffffffffffffffffffffffffff"},
	}
	for _, v := range vectors {
		bin, err := SignedDecimalToBinary(v.size, v.in)
		require.NoError(t, err)
		require.Equal(t, v.expected, hex.EncodeToString(bin))
		require.Equal(t, v.in, SignedBinaryToDecimal(bin, 1))
	}
}

func TestSignedDecimalToBinary_Errors(t *testing.T) {
	_, err := SignedDecimalToBinary(8, "9223372036854775808")
	require.Equal(t, ErrNumberOutOfRange, errors.Cause(err))
	_, err = SignedDecimalToBinary(8, "-9223372036854775809")
	require.Equal(t, ErrNumberOutOfRange, errors.Cause(err))
	_, err = SignedDecimalToBinary(8, "-")
	require.Equal(t, ErrInvalidNumber, errors.Cause(err))
}

func TestBinaryToDecimal_Padding(t *testing.T) {
	bin, err := DecimalToBinary(8, "5000")
	require.NoError(t, err)
	require.Equal(t, "05000", BinaryToDecimal(bin, 5))

	sbin, err := SignedDecimalToBinary(8, "-5000")
	require.NoError(t, err)
	require.Equal(t, "-05000", SignedBinaryToDecimal(sbin, 5))
}

func TestNegativeZero(t *testing.T) {
	bin, err := SignedDecimalToBinary(8, "-0")
	require.NoError(t, err)
	require.Equal(t, "0000000000000000", hex.EncodeToString(bin))
	require.Equal(t, "0", SignedBinaryToDecimal(bin, 1))
}
