package abi

// Kind identifies a primitive wire encoding.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindInt128
	KindUint128
	KindVarint32
	KindVaruint32
	KindFloat32
	KindFloat64
	KindFloat128
	KindBytes
	KindString
	KindName
	KindTimePoint
	KindTimePointSec
	KindBlockTimestamp
	KindSymbolCode
	KindSymbol
	KindAsset
	KindChecksum160
	KindChecksum256
	KindChecksum512
	KindPublicKey
	KindPrivateKey
	KindSignature
)

var kindNames = [...]string{
	KindBool:           "bool",
	KindInt8:           "int8",
	KindUint8:          "uint8",
	KindInt16:          "int16",
	KindUint16:         "uint16",
	KindInt32:          "int32",
	KindUint32:         "uint32",
	KindInt64:          "int64",
	KindUint64:         "uint64",
	KindInt128:         "int128",
	KindUint128:        "uint128",
	KindVarint32:       "varint32",
	KindVaruint32:      "varuint32",
	KindFloat32:        "float32",
	KindFloat64:        "float64",
	KindFloat128:       "float128",
	KindBytes:          "bytes",
	KindString:         "string",
	KindName:           "name",
	KindTimePoint:      "time_point",
	KindTimePointSec:   "time_point_sec",
	KindBlockTimestamp: "block_timestamp_type",
	KindSymbolCode:     "symbol_code",
	KindSymbol:         "symbol",
	KindAsset:          "asset",
	KindChecksum160:    "checksum160",
	KindChecksum256:    "checksum256",
	KindChecksum512:    "checksum512",
	KindPublicKey:      "public_key",
	KindPrivateKey:     "private_key",
	KindSignature:      "signature",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
