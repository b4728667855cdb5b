package wire

import "unicode/utf8"

// WriteVarBytes writes a varuint32 length prefix followed by p.
func (b *Buffer) WriteVarBytes(p []byte) {
	b.WriteVaruint32(uint32(len(p)))
	b.Write(p)
}

func (b *Buffer) ReadVarBytes() ([]byte, error) {
	n, err := b.ReadVaruint32()
	if err != nil {
		return nil, err
	}
	return b.ReadBytes(int(n))
}

// WriteString writes s as length-prefixed bytes. s must be valid
// UTF-8.
func (b *Buffer) WriteString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidText
	}
	b.WriteVarBytes([]byte(s))
	return nil
}

func (b *Buffer) ReadString() (string, error) {
	view, err := b.ReadVarBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(view) {
		return "", ErrInvalidText
	}
	return string(view), nil
}
