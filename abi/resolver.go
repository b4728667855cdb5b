package abi

import (
	"strings"

	"github.com/pkg/errors"
)

// Resolve looks name up against the registry. Aliases are followed by
// name; a trailing "[]" or "?" on an otherwise-unregistered name
// synthesizes an array or optional node around the resolved prefix.
// Synthesized nodes are built per call and never stored, so Resolve
// leaves the registry untouched.
func (r *Registry) Resolve(name string) (*Type, error) {
	return r.resolve(name, nil)
}

func (r *Registry) resolve(name string, seen map[string]bool) (*Type, error) {
	if t, ok := r.types[name]; ok {
		if t.Role == RoleAlias {
			if seen[name] {
				return nil, errors.Wrapf(ErrAliasCycle, "alias %q", name)
			}
			if seen == nil {
				seen = make(map[string]bool)
			}
			seen[name] = true
			return r.resolve(t.Target, seen)
		}
		return t, nil
	}
	if strings.HasSuffix(name, "[]") {
		elem, err := r.resolve(name[:len(name)-2], seen)
		if err != nil {
			return nil, err
		}
		return &Type{Name: name, Role: RoleArray, Elem: elem}, nil
	}
	if strings.HasSuffix(name, "?") {
		inner, err := r.resolve(name[:len(name)-1], seen)
		if err != nil {
			return nil, err
		}
		return &Type{Name: name, Role: RoleOptional, Inner: inner}, nil
	}
	return nil, errors.Wrapf(ErrUnknownType, "type %q", name)
}
