package abi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestResolve_Exact(t *testing.T) {
	r := NewRegistry()
	node, err := r.Resolve("uint8")
	require.NoError(t, err)
	stored, _ := r.Get("uint8")
	require.True(t, node == stored)
}

func TestResolve_AliasChain(t *testing.T) {
	r := NewRegistry()
	r.add(&Type{Name: "account_name", Role: RoleAlias, Target: "name"})
	r.add(&Type{Name: "actor_name", Role: RoleAlias, Target: "account_name"})

	node, err := r.Resolve("actor_name")
	require.NoError(t, err)
	name, _ := r.Get("name")
	require.True(t, node == name)
}

func TestResolve_AliasCycle(t *testing.T) {
	r := NewRegistry()
	r.add(&Type{Name: "a", Role: RoleAlias, Target: "b"})
	r.add(&Type{Name: "b", Role: RoleAlias, Target: "a"})

	_, err := r.Resolve("a")
	require.Equal(t, ErrAliasCycle, errors.Cause(err))

	r.add(&Type{Name: "self", Role: RoleAlias, Target: "self"})
	_, err = r.Resolve("self")
	require.Equal(t, ErrAliasCycle, errors.Cause(err))
}

func TestResolve_ArraySuffix(t *testing.T) {
	r := NewRegistry()
	node, err := r.Resolve("uint8[]")
	require.NoError(t, err)
	require.Equal(t, RoleArray, node.Role)
	elem, _ := r.Get("uint8")
	require.True(t, node.Elem == elem)

	// Synthesized nodes are not registered.
	_, ok := r.Get("uint8[]")
	require.False(t, ok)
}

func TestResolve_OptionalSuffix(t *testing.T) {
	r := NewRegistry()
	node, err := r.Resolve("string?")
	require.NoError(t, err)
	require.Equal(t, RoleOptional, node.Role)
	inner, _ := r.Get("string")
	require.True(t, node.Inner == inner)
}

func TestResolve_SuffixOnAlias(t *testing.T) {
	r := NewRegistry()
	r.add(&Type{Name: "account_name", Role: RoleAlias, Target: "name"})
	node, err := r.Resolve("account_name[]")
	require.NoError(t, err)
	require.Equal(t, RoleArray, node.Role)
	name, _ := r.Get("name")
	require.True(t, node.Elem == name)
}

func TestResolve_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("widget")
	require.Equal(t, ErrUnknownType, errors.Cause(err))
	_, err = r.Resolve("widget[]")
	require.Equal(t, ErrUnknownType, errors.Cause(err))
	_, err = r.Resolve("widget?")
	require.Equal(t, ErrUnknownType, errors.Cause(err))
}
