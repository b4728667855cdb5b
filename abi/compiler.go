package abi

import (
	"encoding/json"

	"abicodec/log"

	"github.com/pkg/errors"
)

var logger = log.WithModule("abi")

// Schema is the externally supplied ABI description: alias and struct
// declarations plus the action table, in declared order.
type Schema struct {
	Version string      `json:"version"`
	Types   []TypeDef   `json:"types"`
	Structs []StructDef `json:"structs"`
	Actions []ActionDef `json:"actions"`
}

// TypeDef declares NewTypeName as an alias of Type.
type TypeDef struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

type FieldDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type StructDef struct {
	Name   string     `json:"name"`
	Base   string     `json:"base"`
	Fields []FieldDef `json:"fields"`
}

type ActionDef struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	RicardianContract string `json:"ricardian_contract,omitempty"`
}

// Contract is the compiled form of one schema: a fully resolved
// registry plus the action table mapped to resolved types.
type Contract struct {
	Types   *Registry
	Actions map[string]*Type
}

// Compile turns a schema into a Contract in two phases. The declare
// phase inserts a skeleton node for every name, holding only raw name
// strings; the resolve phase rewrites those strings into node
// references. Two phases are required because structs may reference
// names declared after them, including each other or their own base.
func Compile(schema *Schema) (*Contract, error) {
	registry := NewRegistry()

	for _, td := range schema.Types {
		registry.add(&Type{
			Name:   td.NewTypeName,
			Role:   RoleAlias,
			Target: td.Type,
		})
	}
	for _, sd := range schema.Structs {
		node := &Type{
			Name:     sd.Name,
			Role:     RoleStruct,
			BaseName: sd.Base,
			Fields:   make([]Field, len(sd.Fields)),
		}
		for i, fd := range sd.Fields {
			node.Fields[i] = Field{Name: fd.Name, TypeName: fd.Type}
		}
		registry.add(node)
	}

	for _, td := range schema.Types {
		if _, err := registry.Resolve(td.NewTypeName); err != nil {
			return nil, errors.Wrapf(err, "alias %q", td.NewTypeName)
		}
	}
	for _, sd := range schema.Structs {
		node, _ := registry.Get(sd.Name)
		if node.BaseName != "" {
			base, err := registry.Resolve(node.BaseName)
			if err != nil {
				return nil, errors.Wrapf(err, "base of struct %q", sd.Name)
			}
			if base.Role != RoleStruct {
				return nil, errors.Errorf("abi: base %q of struct %q is not a struct", node.BaseName, sd.Name)
			}
			node.Base = base
		}
		for i := range node.Fields {
			fieldType, err := registry.Resolve(node.Fields[i].TypeName)
			if err != nil {
				return nil, errors.Wrapf(err, "field %q of struct %q", node.Fields[i].Name, sd.Name)
			}
			node.Fields[i].Type = fieldType
		}
	}

	actions := make(map[string]*Type)
	for _, ad := range schema.Actions {
		actionType, err := registry.Resolve(ad.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "action %q", ad.Name)
		}
		actions[ad.Name] = actionType
	}

	logger.Debug(
		"compiled contract schema",
		"version", schema.Version,
		"aliases", len(schema.Types),
		"structs", len(schema.Structs),
		"actions", len(actions),
	)
	return &Contract{
		Types:   registry,
		Actions: actions,
	}, nil
}

// CompileJSON unmarshals an ABI JSON document and compiles it.
func CompileJSON(data []byte) (*Contract, error) {
	schema := &Schema{}
	if err := json.Unmarshal(data, schema); err != nil {
		return nil, errors.Wrap(err, "error decoding abi json")
	}
	return Compile(schema)
}
