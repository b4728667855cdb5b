package wire

import (
	"encoding/binary"
	"math"
)

// Fixed-width integers are little-endian on the wire.

func (b *Buffer) WriteUint16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.Write(tmp[:])
}

func (b *Buffer) ReadUint16() (uint16, error) {
	view, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(view), nil
}

func (b *Buffer) WriteUint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}

func (b *Buffer) ReadUint32() (uint32, error) {
	view, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(view), nil
}

func (b *Buffer) WriteUint64(v uint64) {
	b.WriteUint32(uint32(v))
	b.WriteUint32(uint32(v >> 32))
}

func (b *Buffer) ReadUint64() (uint64, error) {
	low, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	high, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return uint64(low) | uint64(high)<<32, nil
}

// WriteVaruint32 writes v in LEB128 form: seven payload bits per byte,
// high bit set on all but the final byte.
func (b *Buffer) WriteVaruint32(v uint32) {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b.WriteByte(c)
		if v == 0 {
			return
		}
	}
}

func (b *Buffer) ReadVaruint32() (uint32, error) {
	var result uint32
	var shift uint
	for {
		c, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(c&0x7f) << shift
		if c&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// WriteVarint32 zigzag-transforms v so small magnitudes stay short,
// then writes the result as a varuint32.
func (b *Buffer) WriteVarint32(v int32) {
	b.WriteVaruint32(uint32((v << 1) ^ (v >> 31)))
}

func (b *Buffer) ReadVarint32() (int32, error) {
	v, err := b.ReadVaruint32()
	if err != nil {
		return 0, err
	}
	return int32(v>>1) ^ -int32(v&1), nil
}

// Floats are raw IEEE 754 bytes, little-endian, no transform.

func (b *Buffer) WriteFloat32(v float32) {
	b.WriteUint32(math.Float32bits(v))
}

func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (b *Buffer) WriteFloat64(v float64) {
	b.WriteUint64(math.Float64bits(v))
}

func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
