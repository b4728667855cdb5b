package abi

// Role is the closed set of shapes a type node can take. Exactly one
// role applies per node; the codec dispatches on it.
type Role uint8

const (
	RolePrimitive Role = iota
	RoleAlias
	RoleArray
	RoleOptional
	RoleStruct
)

var roleNames = [...]string{
	RolePrimitive: "primitive",
	RoleAlias:     "alias",
	RoleArray:     "array",
	RoleOptional:  "optional",
	RoleStruct:    "struct",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Field is a named member of a struct type. TypeName is the declared
// name from the schema; Type is the resolved node, filled in during
// the compiler's resolve phase because the name may not have been
// declared yet when the field is first seen.
type Field struct {
	Name     string
	TypeName string
	Type     *Type
}

// Type is one node of the runtime type system. Which of the
// role-specific members are meaningful depends on Role:
//
//	RolePrimitive: Kind
//	RoleAlias:     Target (resolved by name through the registry)
//	RoleArray:     Elem
//	RoleOptional:  Inner
//	RoleStruct:    BaseName/Base, Fields
//
// Nodes are immutable once the resolve phase completes.
type Type struct {
	Name     string
	Role     Role
	Kind     Kind
	Target   string
	Elem     *Type
	Inner    *Type
	BaseName string
	Base     *Type
	Fields   []Field
}
