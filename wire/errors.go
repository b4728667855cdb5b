package wire

import "errors"

var (
	// ErrBufferUnderrun is returned when a read advances past the
	// written length of a buffer.
	ErrBufferUnderrun = errors.New("wire: read past end of buffer")

	// ErrSizeMismatch is returned when a fixed-size field is given
	// input of the wrong length.
	ErrSizeMismatch = errors.New("wire: fixed-size field length mismatch")

	// ErrInvalidText is returned when a string field contains or
	// decodes to malformed UTF-8.
	ErrInvalidText = errors.New("wire: malformed utf-8 string")

	// ErrMalformedAsset is returned when an asset string is missing its
	// mandatory digit run or carries a malformed symbol.
	ErrMalformedAsset = errors.New("wire: malformed asset")
)
