// Package manifest loads batch descriptions from YAML. A manifest names a
// target package and an ordered list of type requests; schema expressions are
// written structurally (primitive scalars, list/optional/record/union
// mappings) so no schema-language frontend is involved. Parsing walks
// yaml.Node values directly because record and union member order matters
// and must survive loading.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	shapegen "github.com/shapegen/shapegen"
	"github.com/shapegen/shapegen/i18n"
)

// Manifest is one loaded batch: the target Go package plus the requests in
// manifest order.
type Manifest struct {
	Package  string
	Requests []shapegen.TypeRequest
}

// rawType is one entry of the types sequence before ref resolution.
type rawType struct {
	name        string
	constructor string
	hasCtor     bool
	schema      *yaml.Node
}

// LoadFile reads and parses a manifest file.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load parses manifest YAML.
func Load(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("manifest: empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeErr(root, "top level must be a mapping")
	}

	m := &Manifest{}
	var types *yaml.Node
	for i := 0; i < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "package":
			m.Package = val.Value
		case "types":
			types = val
		default:
			return nil, nodeErr(key, "unknown key %q", key.Value)
		}
	}
	if m.Package == "" {
		return nil, fmt.Errorf("manifest: missing package")
	}
	if types == nil || types.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("manifest: types must be a sequence")
	}

	raws, err := parseTypes(types)
	if err != nil {
		return nil, err
	}
	for _, r := range raws {
		st, err := resolveSchema(r.schema, raws, map[string]bool{})
		if err != nil {
			return nil, err
		}
		if r.hasCtor {
			m.Requests = append(m.Requests, shapegen.ProductRequest(r.name, r.constructor, st))
		} else {
			m.Requests = append(m.Requests, shapegen.UnionRequest(r.name, st))
		}
	}
	return m, nil
}

func parseTypes(types *yaml.Node) ([]rawType, error) {
	raws := make([]rawType, 0, len(types.Content))
	for _, entry := range types.Content {
		if entry.Kind != yaml.MappingNode {
			return nil, nodeErr(entry, "type entry must be a mapping")
		}
		var r rawType
		for i := 0; i < len(entry.Content); i += 2 {
			key, val := entry.Content[i], entry.Content[i+1]
			switch key.Value {
			case "name":
				r.name = val.Value
			case "constructor":
				r.constructor = val.Value
				r.hasCtor = true
			case "schema":
				r.schema = val
			default:
				return nil, nodeErr(key, "unknown key %q in type entry", key.Value)
			}
		}
		if r.name == "" {
			return nil, nodeErr(entry, "type entry missing name")
		}
		if r.schema == nil && !r.hasCtor {
			return nil, nodeErr(entry, "type %q missing schema", r.name)
		}
		raws = append(raws, r)
	}
	return raws, nil
}

// resolveSchema turns one schema node into a SchemaType. ref entries
// substitute the named sibling's schema structurally; visiting guards against
// ref cycles, which would be recursive types and are not supported.
func resolveSchema(node *yaml.Node, siblings []rawType, visiting map[string]bool) (shapegen.SchemaType, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "Bool":
			return shapegen.Bool{}, nil
		case "Double":
			return shapegen.Double{}, nil
		case "Integer":
			return shapegen.Integer{}, nil
		case "Natural":
			return shapegen.Natural{}, nil
		case "Text":
			return shapegen.Text{}, nil
		case "", "~", "null":
			return nil, nil
		}
		return nil, nodeErr(node, "unknown primitive %q", node.Value)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, nodeErr(node, "schema mapping must have exactly one key")
		}
		key, val := node.Content[0], node.Content[1]
		switch key.Value {
		case "list":
			elem, err := resolveSchema(val, siblings, visiting)
			if err != nil {
				return nil, err
			}
			return &shapegen.List{Elem: elem}, nil
		case "optional":
			elem, err := resolveSchema(val, siblings, visiting)
			if err != nil {
				return nil, err
			}
			return &shapegen.Optional{Elem: elem}, nil
		case "record":
			return resolveRecord(val, siblings, visiting)
		case "union":
			return resolveUnion(val, siblings, visiting)
		case "ref":
			return resolveRef(val, siblings, visiting)
		}
		return nil, nodeErr(key, "unknown schema form %q", key.Value)
	}
	return nil, nodeErr(node, "unexpected schema node")
}

func resolveRecord(val *yaml.Node, siblings []rawType, visiting map[string]bool) (shapegen.SchemaType, error) {
	if val.Kind != yaml.MappingNode {
		return nil, nodeErr(val, "record body must be a mapping")
	}
	fields := make([]shapegen.Field, 0, len(val.Content)/2)
	seen := make(map[string]struct{}, len(val.Content)/2)
	for i := 0; i < len(val.Content); i += 2 {
		name, tn := val.Content[i], val.Content[i+1]
		if _, dup := seen[name.Value]; dup {
			return nil, memberIssue(name, "record field names must be unique")
		}
		seen[name.Value] = struct{}{}
		ft, err := resolveSchema(tn, siblings, visiting)
		if err != nil {
			return nil, err
		}
		if ft == nil {
			return nil, nodeErr(tn, "record field %q needs a type", name.Value)
		}
		fields = append(fields, shapegen.Field{Name: name.Value, Type: ft})
	}
	return &shapegen.Record{Fields: fields}, nil
}

func resolveUnion(val *yaml.Node, siblings []rawType, visiting map[string]bool) (shapegen.SchemaType, error) {
	if val.Kind != yaml.MappingNode {
		return nil, nodeErr(val, "union body must be a mapping")
	}
	alts := make([]shapegen.Alternative, 0, len(val.Content)/2)
	seen := make(map[string]struct{}, len(val.Content)/2)
	for i := 0; i < len(val.Content); i += 2 {
		name, tn := val.Content[i], val.Content[i+1]
		if _, dup := seen[name.Value]; dup {
			return nil, memberIssue(name, "union alternative names must be unique")
		}
		seen[name.Value] = struct{}{}
		at, err := resolveSchema(tn, siblings, visiting)
		if err != nil {
			return nil, err
		}
		alts = append(alts, shapegen.Alternative{Name: name.Value, Type: at})
	}
	return &shapegen.Union{Alternatives: alts}, nil
}

func resolveRef(val *yaml.Node, siblings []rawType, visiting map[string]bool) (shapegen.SchemaType, error) {
	target := val.Value
	if visiting[target] {
		return nil, nodeErr(val, "recursive ref to %q; recursive types are not supported", target)
	}
	for _, s := range siblings {
		if s.name == target {
			visiting[target] = true
			st, err := resolveSchema(s.schema, siblings, visiting)
			delete(visiting, target)
			if err != nil {
				return nil, err
			}
			if st == nil {
				return nil, nodeErr(val, "ref target %q has no schema", target)
			}
			return st, nil
		}
	}
	return nil, nodeErr(val, "ref to unknown type %q", target)
}

func nodeErr(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("manifest: line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

// memberIssue reports a repeated record field or union alternative name the
// same way the dsl builders do, with the manifest line in the hint.
func memberIssue(name *yaml.Node, hint string) error {
	return shapegen.Issues{shapegen.Issue{
		Path:    "/" + name.Value,
		Code:    shapegen.CodeDuplicateMemberName,
		Message: i18n.T(shapegen.CodeDuplicateMemberName, nil),
		Hint:    fmt.Sprintf("line %d: %s", name.Line, hint),
	}}
}
