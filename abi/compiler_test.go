package abi

import (
	"encoding/hex"
	"testing"

	"abicodec/wire"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const tokenABI = `{
	"version": "eosio::abi/1.1",
	"types": [
		{"new_type_name": "account_name", "type": "name"}
	],
	"structs": [
		{
			"name": "transfer",
			"base": "",
			"fields": [
				{"name": "from", "type": "account_name"},
				{"name": "to", "type": "account_name"},
				{"name": "quantity", "type": "asset"},
				{"name": "memo", "type": "string"}
			]
		}
	],
	"actions": [
		{"name": "transfer", "type": "transfer", "ricardian_contract": ""}
	]
}`

func compileToken(t *testing.T) *Contract {
	contract, err := CompileJSON([]byte(tokenABI))
	require.NoError(t, err)
	return contract
}

func TestCompile_Token(t *testing.T) {
	contract := compileToken(t)

	transfer, err := contract.ActionType("transfer")
	require.NoError(t, err)
	require.Equal(t, RoleStruct, transfer.Role)
	require.Len(t, transfer.Fields, 4)

	// Alias fields resolve through to the primitive node.
	name, _ := contract.Types.Get("name")
	require.True(t, transfer.Fields[0].Type == name)
	require.True(t, transfer.Fields[1].Type == name)
}

func TestCompile_ForwardReference(t *testing.T) {
	contract, err := Compile(&Schema{
		Structs: []StructDef{
			{Name: "outer", Fields: []FieldDef{{Name: "in", Type: "inner"}}},
			{Name: "inner", Fields: []FieldDef{{Name: "n", Type: "uint8"}}},
		},
	})
	require.NoError(t, err)
	outer, _ := contract.Types.Get("outer")
	inner, _ := contract.Types.Get("inner")
	require.True(t, outer.Fields[0].Type == inner)
}

func TestCompile_BaseChain(t *testing.T) {
	contract, err := Compile(&Schema{
		Structs: []StructDef{
			{Name: "header", Fields: []FieldDef{{Name: "a", Type: "uint8"}}},
			{Name: "payload", Base: "header", Fields: []FieldDef{{Name: "b", Type: "uint8"}}},
		},
	})
	require.NoError(t, err)

	payload, _ := contract.Types.Get("payload")
	header, _ := contract.Types.Get("header")
	require.True(t, payload.Base == header)

	// Base fields precede own fields on the wire.
	buf := wire.NewBuffer()
	err = Encode(payload, buf, map[string]interface{}{
		"a": float64(1),
		"b": float64(2),
	})
	require.NoError(t, err)
	require.Equal(t, "0102", hex.EncodeToString(buf.Bytes()))

	decoded, err := Decode(payload, wire.NewReadBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		"a": float64(1),
		"b": float64(2),
	}, decoded)
}

func TestCompile_BaseNotStruct(t *testing.T) {
	_, err := Compile(&Schema{
		Structs: []StructDef{
			{Name: "payload", Base: "uint8", Fields: []FieldDef{{Name: "b", Type: "uint8"}}},
		},
	})
	require.Error(t, err)
}

func TestCompile_UnknownFieldType(t *testing.T) {
	_, err := Compile(&Schema{
		Structs: []StructDef{
			{Name: "payload", Fields: []FieldDef{{Name: "b", Type: "widget"}}},
		},
	})
	require.Equal(t, ErrUnknownType, errors.Cause(err))
}

func TestCompile_AliasCycle(t *testing.T) {
	_, err := Compile(&Schema{
		Types: []TypeDef{
			{NewTypeName: "a", Type: "b"},
			{NewTypeName: "b", Type: "a"},
		},
	})
	require.Equal(t, ErrAliasCycle, errors.Cause(err))
}

func TestCompile_UnknownActionType(t *testing.T) {
	_, err := Compile(&Schema{
		Actions: []ActionDef{{Name: "frob", Type: "missing"}},
	})
	require.Equal(t, ErrUnknownType, errors.Cause(err))
}

func TestCompileJSON_BadInput(t *testing.T) {
	_, err := CompileJSON([]byte("{not json"))
	require.Error(t, err)
}
