package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Bootstrap(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{
		"bool", "uint8", "int64", "uint128", "varuint32", "float64",
		"bytes", "string", "name", "time_point", "block_timestamp_type",
		"symbol", "asset", "checksum256", "public_key", "signature",
	} {
		node, ok := r.Get(name)
		require.True(t, ok, name)
		require.Equal(t, RolePrimitive, node.Role)
		require.Equal(t, name, node.Name)
	}
}

func TestNewRegistry_ExtendedAsset(t *testing.T) {
	r := NewRegistry()
	node, ok := r.Get("extended_asset")
	require.True(t, ok)
	require.Equal(t, RoleStruct, node.Role)
	require.Len(t, node.Fields, 2)
	require.Equal(t, "quantity", node.Fields[0].Name)
	require.Equal(t, "contract", node.Fields[1].Name)

	asset, _ := r.Get("asset")
	name, _ := r.Get("name")
	require.True(t, node.Fields[0].Type == asset)
	require.True(t, node.Fields[1].Type == name)
}

func TestNewRegistry_Isolation(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()
	r1.add(&Type{Name: "custom", Role: RoleAlias, Target: "uint8"})
	_, ok := r2.Get("custom")
	require.False(t, ok)
}

func TestRegistry_Names(t *testing.T) {
	names := NewRegistry().Names()
	// 31 primitives plus extended_asset, sorted.
	require.Len(t, names, 32)
	for i := 1; i < len(names); i++ {
		require.True(t, names[i-1] < names[i])
	}
}
