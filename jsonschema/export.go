package jsonschema

import (
	"fmt"

	shapegen "github.com/shapegen/shapegen"
)

// FromSchemaType projects a resolved schema type into a JSON Schema document
// describing its wire form: records become objects with every field
// required, unions become a oneOf over per-alternative objects keyed by a
// "tag" member, matching the runtime codec's wire layout.
func FromSchemaType(t shapegen.SchemaType) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("jsonschema: nil schema type")
	}
	switch tt := t.(type) {
	case shapegen.Bool:
		return &Schema{Type: "boolean"}, nil
	case shapegen.Double:
		return &Schema{Type: "number"}, nil
	case shapegen.Integer:
		return &Schema{Type: "integer"}, nil
	case shapegen.Natural:
		zero := 0.0
		return &Schema{Type: "integer", Minimum: &zero}, nil
	case shapegen.Text:
		return &Schema{Type: "string"}, nil
	case *shapegen.List:
		items, err := FromSchemaType(tt.Elem)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case *shapegen.Optional:
		elem, err := FromSchemaType(tt.Elem)
		if err != nil {
			return nil, err
		}
		elem.Nullable = true
		return elem, nil
	case *shapegen.Record:
		return recordSchema(tt)
	case *shapegen.Union:
		out := &Schema{OneOf: make([]*Schema, 0, len(tt.Alternatives))}
		for _, alt := range tt.Alternatives {
			vs, err := alternativeSchema(alt)
			if err != nil {
				return nil, err
			}
			out.OneOf = append(out.OneOf, vs)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonschema: unsupported schema type %s", t.Kind())
	}
}

func recordSchema(r *shapegen.Record) (*Schema, error) {
	out := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, len(r.Fields)),
		Required:             make([]string, 0, len(r.Fields)),
		AdditionalProperties: false,
	}
	for _, f := range r.Fields {
		fs, err := FromSchemaType(f.Type)
		if err != nil {
			return nil, err
		}
		out.Properties[f.Name] = fs
		out.Required = append(out.Required, f.Name)
	}
	return out, nil
}

// alternativeSchema renders one union alternative as the tagged object the
// codec produces: the tag member pinned by enum, payload record fields
// inlined, any other payload under "value".
func alternativeSchema(alt shapegen.Alternative) (*Schema, error) {
	out := &Schema{
		Type:                 "object",
		Properties:           map[string]*Schema{"tag": {Type: "string", Enum: []any{alt.Name}}},
		Required:             []string{"tag"},
		AdditionalProperties: false,
	}
	if alt.Type == nil {
		return out, nil
	}
	if rec, ok := alt.Type.(*shapegen.Record); ok {
		for _, f := range rec.Fields {
			fs, err := FromSchemaType(f.Type)
			if err != nil {
				return nil, err
			}
			out.Properties[f.Name] = fs
			out.Required = append(out.Required, f.Name)
		}
		return out, nil
	}
	vs, err := FromSchemaType(alt.Type)
	if err != nil {
		return nil, err
	}
	out.Properties["value"] = vs
	out.Required = append(out.Required, "value")
	return out, nil
}
