package abi

import "sort"

// Registry maps type names to nodes. The bootstrap table of primitives
// is built fresh for every consumer, so schema-specific additions never
// pollute a shared vocabulary. After compilation finishes a Registry is
// read-only and safe for concurrent readers.
type Registry struct {
	types map[string]*Type
}

// NewRegistry builds the canonical primitive vocabulary plus the
// extended_asset composite.
func NewRegistry() *Registry {
	r := &Registry{
		types: make(map[string]*Type),
	}
	for kind := KindBool; kind <= KindSignature; kind++ {
		r.add(&Type{
			Name: kind.String(),
			Role: RolePrimitive,
			Kind: kind,
		})
	}
	// One composite ships with the bootstrap set so the struct path is
	// exercised without a schema.
	extended := &Type{
		Name: "extended_asset",
		Role: RoleStruct,
		Fields: []Field{
			{Name: "quantity", TypeName: "asset"},
			{Name: "contract", TypeName: "name"},
		},
	}
	extended.Fields[0].Type = r.types["asset"]
	extended.Fields[1].Type = r.types["name"]
	r.add(extended)
	return r
}

func (r *Registry) add(t *Type) {
	r.types[t.Name] = t
}

// Get returns the node registered under name, without alias or suffix
// resolution.
func (r *Registry) Get(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns all registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
