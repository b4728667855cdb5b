package wire

// Buffer is a growable byte store with separate write and read cursors.
// Writes always append at the end; reads advance an independent cursor
// over the written bytes, so the same instance can be filled and then
// drained. A Buffer must not be shared between concurrent callers, and
// a Buffer touched by a failed operation should be discarded since its
// length may reflect a partial write.
type Buffer struct {
	data []byte
	pos  int
}

const initialCapacity = 256

func NewBuffer() *Buffer {
	return &Buffer{
		data: make([]byte, 0, initialCapacity),
	}
}

// NewReadBuffer returns a Buffer whose readable contents are b. The
// buffer does not copy b.
func NewReadBuffer(b []byte) *Buffer {
	return &Buffer{
		data: b,
	}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the written bytes. The returned slice aliases the
// buffer's storage.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Reserve grows the buffer's capacity, if necessary, to fit n more
// bytes. Growth is multiplicative so repeated small writes stay
// amortized-constant.
func (b *Buffer) Reserve(n int) {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = initialCapacity
	}
	for newCap < need {
		newCap += newCap / 2
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Write appends p to the buffer. It never fails; the error return
// satisfies io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Reserve(len(p))
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteByte appends a single byte. It never fails; the error return
// satisfies io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	b.Reserve(1)
	b.data = append(b.data, c)
	return nil
}

// WriteFixed appends p, which must be exactly size bytes long.
func (b *Buffer) WriteFixed(p []byte, size int) error {
	if len(p) != size {
		return ErrSizeMismatch
	}
	_, err := b.Write(p)
	return err
}

// ReadByte reads one byte and advances the read cursor.
func (b *Buffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, ErrBufferUnderrun
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

// ReadBytes returns a view of the next n bytes and advances the read
// cursor. The returned slice aliases the buffer's storage; callers
// that retain it across further writes must copy it.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || b.pos+n > len(b.data) {
		return nil, ErrBufferUnderrun
	}
	view := b.data[b.pos : b.pos+n]
	b.pos += n
	return view, nil
}
