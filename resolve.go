package shapegen

import "github.com/shapegen/shapegen/i18n"

// resolveNested maps a schema type occurring inside a declaration onto the
// host type algebra. Priority: primitives map directly, List and Optional
// wrap their resolved element, and anything else must be structurally
// equivalent to a sibling request's schema. Sibling scanning never matches
// the request being resolved, so a type cannot reference itself.
func resolveNested(t SchemaType, siblings []TypeRequest, selfName, path string) (HostType, error) {
	switch tt := t.(type) {
	case Bool:
		return HostBool{}, nil
	case Double:
		return HostDouble{}, nil
	case Integer:
		return HostInteger{}, nil
	case Natural:
		return HostNatural{}, nil
	case Text:
		return HostText{}, nil
	case *List:
		elem, err := resolveNested(tt.Elem, siblings, selfName, path)
		if err != nil {
			return nil, err
		}
		return ListOf{Elem: elem}, nil
	case *Optional:
		elem, err := resolveNested(tt.Elem, siblings, selfName, path)
		if err != nil {
			return nil, err
		}
		return OptionalOf{Elem: elem}, nil
	}
	if ref, ok := matchSibling(t, siblings, selfName); ok {
		return ref, nil
	}
	return nil, Issues{Issue{
		Path:    path,
		Code:    CodeUnsupportedNestedType,
		Message: i18n.T(CodeUnsupportedNestedType, nil),
		Hint:    "supported nested types: Bool, Double, Integer, Natural, Text, List, Optional, or a type declared in the same batch",
		Schema:  t,
	}}
}

// matchSibling scans the batch in input order for the first request whose
// top-level schema is structurally equivalent to t. The request named
// selfName never matches; recursive declarations are not supported.
func matchSibling(t SchemaType, siblings []TypeRequest, selfName string) (Reference, bool) {
	for _, s := range siblings {
		if s.DeclaredName == selfName {
			continue
		}
		if s.Schema != nil && Equivalent(s.Schema, t) {
			return Reference{Name: s.DeclaredName}, true
		}
	}
	return Reference{}, false
}
