package abi

import "errors"

var (
	// ErrUnknownType is returned when a type name fails to resolve
	// against a registry.
	ErrUnknownType = errors.New("abi: unknown type name")

	// ErrUnknownAction is returned when an action name is absent from
	// a compiled contract.
	ErrUnknownAction = errors.New("abi: unknown action")

	// ErrMissingField is returned when a struct encode is given a
	// value lacking a declared field.
	ErrMissingField = errors.New("abi: missing field")

	// ErrAliasCycle is returned when alias declarations form a loop.
	// Cycles are rejected at resolution time rather than recursed into.
	ErrAliasCycle = errors.New("abi: alias cycle")
)
