package abi

import (
	"encoding/hex"
	"math"
	"strconv"

	"abicodec/keys"
	"abicodec/numeric"
	"abicodec/wire"

	"github.com/pkg/errors"
)

// Encode writes v through the type node t into buf. Values follow the
// shapes encoding/json produces: bool, float64, string,
// []interface{}, map[string]interface{} and nil. Exact 64/128-bit
// integers travel as decimal strings; see the primitive cases below.
func Encode(t *Type, buf *wire.Buffer, v interface{}) error {
	switch t.Role {
	case RolePrimitive:
		return encodePrimitive(t, buf, v)
	case RoleArray:
		items, ok := v.([]interface{})
		if !ok {
			return errors.Errorf("abi: expected array for %q, got %T", t.Name, v)
		}
		buf.WriteVaruint32(uint32(len(items)))
		for i, item := range items {
			if err := Encode(t.Elem, buf, item); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil
	case RoleOptional:
		if v == nil {
			buf.WriteByte(0)
			return nil
		}
		buf.WriteByte(1)
		return Encode(t.Inner, buf, v)
	case RoleStruct:
		return encodeStruct(t, buf, v)
	default:
		return errors.Errorf("abi: unresolved alias %q", t.Name)
	}
}

// Decode reads one value of type t from buf.
func Decode(t *Type, buf *wire.Buffer) (interface{}, error) {
	switch t.Role {
	case RolePrimitive:
		return decodePrimitive(t, buf)
	case RoleArray:
		n, err := buf.ReadVaruint32()
		if err != nil {
			return nil, err
		}
		capHint := int(n)
		if capHint > buf.Remaining() {
			capHint = buf.Remaining()
		}
		items := make([]interface{}, 0, capHint)
		for i := 0; i < int(n); i++ {
			item, err := Decode(t.Elem, buf)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			items = append(items, item)
		}
		return items, nil
	case RoleOptional:
		flag, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		if flag == 0 {
			return nil, nil
		}
		return Decode(t.Inner, buf)
	case RoleStruct:
		m := make(map[string]interface{})
		if err := decodeStructInto(t, buf, m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, errors.Errorf("abi: unresolved alias %q", t.Name)
	}
}

// encodeStruct emits the base chain first, so ancestor fields precede
// descendant fields on the wire, then the node's own fields in
// declaration order. The same flat value map feeds every level.
func encodeStruct(t *Type, buf *wire.Buffer, v interface{}) error {
	m, ok := v.(map[string]interface{})
	if !ok {
		return errors.Errorf("abi: expected object for %q, got %T", t.Name, v)
	}
	if t.Base != nil {
		if err := encodeStruct(t.Base, buf, v); err != nil {
			return err
		}
	}
	for _, f := range t.Fields {
		fv, present := m[f.Name]
		if !present {
			return errors.Wrapf(ErrMissingField, "%s.%s", t.Name, f.Name)
		}
		if err := Encode(f.Type, buf, fv); err != nil {
			return errors.Wrapf(err, "field %s.%s", t.Name, f.Name)
		}
	}
	return nil
}

func decodeStructInto(t *Type, buf *wire.Buffer, m map[string]interface{}) error {
	if t.Base != nil {
		if err := decodeStructInto(t.Base, buf, m); err != nil {
			return err
		}
	}
	for _, f := range t.Fields {
		fv, err := Decode(f.Type, buf)
		if err != nil {
			return errors.Wrapf(err, "field %s.%s", t.Name, f.Name)
		}
		m[f.Name] = fv
	}
	return nil
}

func encodePrimitive(t *Type, buf *wire.Buffer, v interface{}) error {
	switch t.Kind {
	case KindBool:
		flag, ok := v.(bool)
		if !ok {
			return errors.Errorf("abi: expected bool, got %T", v)
		}
		if flag {
			return buf.WriteByte(1)
		}
		return buf.WriteByte(0)
	case KindInt8:
		n, err := intValue(v, math.MinInt8, math.MaxInt8)
		if err != nil {
			return err
		}
		return buf.WriteByte(byte(n))
	case KindUint8:
		n, err := intValue(v, 0, math.MaxUint8)
		if err != nil {
			return err
		}
		return buf.WriteByte(byte(n))
	case KindInt16:
		n, err := intValue(v, math.MinInt16, math.MaxInt16)
		if err != nil {
			return err
		}
		buf.WriteUint16(uint16(n))
		return nil
	case KindUint16:
		n, err := intValue(v, 0, math.MaxUint16)
		if err != nil {
			return err
		}
		buf.WriteUint16(uint16(n))
		return nil
	case KindInt32:
		n, err := intValue(v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return err
		}
		buf.WriteUint32(uint32(n))
		return nil
	case KindUint32:
		n, err := intValue(v, 0, math.MaxUint32)
		if err != nil {
			return err
		}
		buf.WriteUint32(uint32(n))
		return nil
	case KindVarint32:
		n, err := intValue(v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return err
		}
		buf.WriteVarint32(int32(n))
		return nil
	case KindVaruint32:
		n, err := intValue(v, 0, math.MaxUint32)
		if err != nil {
			return err
		}
		buf.WriteVaruint32(uint32(n))
		return nil
	case KindInt64, KindUint64, KindInt128, KindUint128:
		return encodeBigInt(t.Kind, buf, v)
	case KindFloat32:
		f, err := floatValue(v)
		if err != nil {
			return err
		}
		buf.WriteFloat32(float32(f))
		return nil
	case KindFloat64:
		f, err := floatValue(v)
		if err != nil {
			return err
		}
		buf.WriteFloat64(f)
		return nil
	case KindFloat128:
		return writeHexFixed(buf, v, 16)
	case KindBytes:
		raw, err := hexValue(v)
		if err != nil {
			return err
		}
		buf.WriteVarBytes(raw)
		return nil
	case KindString:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		return buf.WriteString(s)
	case KindName:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		buf.WriteName(s)
		return nil
	case KindTimePoint:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		return buf.WriteTimePoint(s)
	case KindTimePointSec:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		return buf.WriteTimePointSec(s)
	case KindBlockTimestamp:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		return buf.WriteBlockTimestamp(s)
	case KindSymbolCode:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		buf.WriteSymbolCode(s)
		return nil
	case KindSymbol:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		sym, err := wire.ParseSymbol(s)
		if err != nil {
			return err
		}
		buf.WriteSymbol(sym)
		return nil
	case KindAsset:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		return buf.WriteAsset(s)
	case KindChecksum160:
		return writeHexFixed(buf, v, 20)
	case KindChecksum256:
		return writeHexFixed(buf, v, 32)
	case KindChecksum512:
		return writeHexFixed(buf, v, 64)
	case KindPublicKey:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		key, err := keys.PublicKeyFromString(s)
		if err != nil {
			return err
		}
		buf.WriteByte(byte(key.Type))
		return buf.WriteFixed(key.Data, keys.PublicKeyDataSize)
	case KindPrivateKey:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		key, err := keys.PrivateKeyFromString(s)
		if err != nil {
			return err
		}
		buf.WriteByte(byte(key.Type))
		return buf.WriteFixed(key.Data, keys.PrivateKeyDataSize)
	case KindSignature:
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		sig, err := keys.SignatureFromString(s)
		if err != nil {
			return err
		}
		buf.WriteByte(byte(sig.Type))
		return buf.WriteFixed(sig.Data, keys.SignatureDataSize)
	default:
		return errors.Errorf("abi: no encoder for kind %s", t.Kind)
	}
}

func decodePrimitive(t *Type, buf *wire.Buffer) (interface{}, error) {
	switch t.Kind {
	case KindBool:
		c, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		return c != 0, nil
	case KindInt8:
		c, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		return float64(int8(c)), nil
	case KindUint8:
		c, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		return float64(c), nil
	case KindInt16:
		n, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		return float64(int16(n)), nil
	case KindUint16:
		n, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		return float64(n), nil
	case KindInt32:
		n, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		return float64(int32(n)), nil
	case KindUint32:
		n, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		return float64(n), nil
	case KindVarint32:
		n, err := buf.ReadVarint32()
		if err != nil {
			return nil, err
		}
		return float64(n), nil
	case KindVaruint32:
		n, err := buf.ReadVaruint32()
		if err != nil {
			return nil, err
		}
		return float64(n), nil
	case KindInt64, KindUint64, KindInt128, KindUint128:
		return decodeBigInt(t.Kind, buf)
	case KindFloat32:
		f, err := buf.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return float64(f), nil
	case KindFloat64:
		return buf.ReadFloat64()
	case KindFloat128:
		return readHexFixed(buf, 16)
	case KindBytes:
		view, err := buf.ReadVarBytes()
		if err != nil {
			return nil, err
		}
		return hex.EncodeToString(view), nil
	case KindString:
		return buf.ReadString()
	case KindName:
		return buf.ReadName()
	case KindTimePoint:
		return buf.ReadTimePoint()
	case KindTimePointSec:
		return buf.ReadTimePointSec()
	case KindBlockTimestamp:
		return buf.ReadBlockTimestamp()
	case KindSymbolCode:
		return buf.ReadSymbolCode()
	case KindSymbol:
		sym, err := buf.ReadSymbol()
		if err != nil {
			return nil, err
		}
		return sym.String(), nil
	case KindAsset:
		return buf.ReadAsset()
	case KindChecksum160:
		return readHexFixed(buf, 20)
	case KindChecksum256:
		return readHexFixed(buf, 32)
	case KindChecksum512:
		return readHexFixed(buf, 64)
	case KindPublicKey:
		keyType, data, err := readTagged(buf, keys.PublicKeyDataSize)
		if err != nil {
			return nil, err
		}
		return keys.PublicKey{Type: keyType, Data: data}.String(), nil
	case KindPrivateKey:
		keyType, data, err := readTagged(buf, keys.PrivateKeyDataSize)
		if err != nil {
			return nil, err
		}
		return keys.PrivateKey{Type: keyType, Data: data}.String(), nil
	case KindSignature:
		keyType, data, err := readTagged(buf, keys.SignatureDataSize)
		if err != nil {
			return nil, err
		}
		return keys.Signature{Type: keyType, Data: data}.String(), nil
	default:
		return nil, errors.Errorf("abi: no decoder for kind %s", t.Kind)
	}
}

// encodeBigInt routes the dedicated 64/128-bit integer types through
// the exact big-integer codec. Generic number values still ride
// float64 and stay exact only up to 2^53; both paths are deliberate.
func encodeBigInt(kind Kind, buf *wire.Buffer, v interface{}) error {
	s, err := decimalValue(v)
	if err != nil {
		return err
	}
	size := 8
	if kind == KindInt128 || kind == KindUint128 {
		size = 16
	}
	var bin []byte
	if kind == KindInt64 || kind == KindInt128 {
		bin, err = numeric.SignedDecimalToBinary(size, s)
	} else {
		bin, err = numeric.DecimalToBinary(size, s)
	}
	if err != nil {
		return err
	}
	_, err = buf.Write(bin)
	return err
}

func decodeBigInt(kind Kind, buf *wire.Buffer) (interface{}, error) {
	size := 8
	if kind == KindInt128 || kind == KindUint128 {
		size = 16
	}
	view, err := buf.ReadBytes(size)
	if err != nil {
		return nil, err
	}
	if kind == KindInt64 || kind == KindInt128 {
		return numeric.SignedBinaryToDecimal(view, 1), nil
	}
	return numeric.BinaryToDecimal(view, 1), nil
}

func readTagged(buf *wire.Buffer, size int) (keys.KeyType, []byte, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return 0, nil, err
	}
	view, err := buf.ReadBytes(size)
	if err != nil {
		return 0, nil, err
	}
	data := make([]byte, size)
	copy(data, view)
	return keys.KeyType(tag), data, nil
}

func writeHexFixed(buf *wire.Buffer, v interface{}, size int) error {
	raw, err := hexValue(v)
	if err != nil {
		return err
	}
	return buf.WriteFixed(raw, size)
}

func readHexFixed(buf *wire.Buffer, size int) (interface{}, error) {
	view, err := buf.ReadBytes(size)
	if err != nil {
		return nil, err
	}
	return hex.EncodeToString(view), nil
}

func stringValue(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("abi: expected string, got %T", v)
	}
	return s, nil
}

func hexValue(v interface{}) ([]byte, error) {
	s, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return raw, nil
}

func floatValue(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid number %q", n)
		}
		return f, nil
	default:
		return 0, errors.Errorf("abi: expected number, got %T", v)
	}
}

func intValue(v interface{}, min, max int64) (int64, error) {
	var n int64
	switch num := v.(type) {
	case float64:
		n = int64(num)
		if float64(n) != num {
			return 0, errors.Errorf("abi: expected integer, got %v", num)
		}
	case string:
		parsed, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid integer %q", num)
		}
		n = parsed
	default:
		return 0, errors.Errorf("abi: expected integer, got %T", v)
	}
	if n < min || n > max {
		return 0, errors.Errorf("abi: integer %d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}

// decimalValue renders v as a plain decimal string for the
// big-integer codec. Numbers must be integral.
func decimalValue(v interface{}) (string, error) {
	switch n := v.(type) {
	case string:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return "", errors.Errorf("abi: expected integer, got %v", n)
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	default:
		return "", errors.Errorf("abi: expected integer or decimal string, got %T", v)
	}
}
