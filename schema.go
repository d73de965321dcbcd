package lexdraft

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// SchemaFor generates a JSON Schema object from a struct type T.
//
// Field names are taken from json tags, descriptions from `desc` tags, and
// fields tagged `required:"true"` are listed as required. Nested structs,
// slices, and maps are supported.
//
// Example:
//
//	type SearchArgs struct {
//	    Query string `json:"query" desc:"Search query" required:"true"`
//	    Limit int    `json:"limit" desc:"Maximum results"`
//	}
func SchemaFor[T any]() (json.RawMessage, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("schema: cannot generate schema for nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct type", t.Kind())
	}

	node := schemaForStruct(t)
	return json.Marshal(node)
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

// schemaNode is the serialized JSON Schema representation.
type schemaNode struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*schemaNode `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Items       *schemaNode            `json:"items,omitempty"`
}

func schemaForStruct(t reflect.Type) *schemaNode {
	node := &schemaNode{
		Type:       "object",
		Properties: map[string]*schemaNode{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		prop := schemaForType(field.Type)
		if desc := field.Tag.Get("desc"); desc != "" {
			prop.Description = desc
		}
		node.Properties[name] = prop

		if field.Tag.Get("required") == "true" {
			node.Required = append(node.Required, name)
		}
	}

	return node
}

func schemaForType(t reflect.Type) *schemaNode {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &schemaNode{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &schemaNode{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &schemaNode{Type: "number"}

	case reflect.Bool:
		return &schemaNode{Type: "boolean"}

	case reflect.Slice, reflect.Array:
		return &schemaNode{Type: "array", Items: schemaForType(t.Elem())}

	case reflect.Struct:
		return schemaForStruct(t)

	case reflect.Map:
		// Maps become objects with no declared properties
		return &schemaNode{Type: "object"}

	default:
		return &schemaNode{Type: "string"}
	}
}
