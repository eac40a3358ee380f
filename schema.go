package shapegen

import "strings"

// Kind identifies a schema type node.
type Kind int

const (
	KindBool Kind = iota
	KindDouble
	KindInteger
	KindNatural
	KindText
	KindList
	KindOptional
	KindRecord
	KindUnion
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindDouble:
		return "Double"
	case KindInteger:
		return "Integer"
	case KindNatural:
		return "Natural"
	case KindText:
		return "Text"
	case KindList:
		return "List"
	case KindOptional:
		return "Optional"
	case KindRecord:
		return "Record"
	case KindUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// SchemaType is the root interface of the resolved schema IR the compiler
// consumes. Values are finite acyclic trees; upstream resolution guarantees
// there are no cycles or unresolved references by the time a batch arrives.
type SchemaType interface {
	Kind() Kind
	// String renders the type in a compact schema-level syntax for diagnostics.
	String() string
}

// Bool is the boolean primitive.
type Bool struct{}

func (Bool) Kind() Kind     { return KindBool }
func (Bool) String() string { return "Bool" }

// Double is the double-precision floating point primitive.
type Double struct{}

func (Double) Kind() Kind     { return KindDouble }
func (Double) String() string { return "Double" }

// Integer is the signed integer primitive.
type Integer struct{}

func (Integer) Kind() Kind     { return KindInteger }
func (Integer) String() string { return "Integer" }

// Natural is the non-negative integer primitive.
type Natural struct{}

func (Natural) Kind() Kind     { return KindNatural }
func (Natural) String() string { return "Natural" }

// Text is the text primitive.
type Text struct{}

func (Text) Kind() Kind     { return KindText }
func (Text) String() string { return "Text" }

// List is a homogeneous sequence type.
type List struct {
	Elem SchemaType
}

func (l *List) Kind() Kind     { return KindList }
func (l *List) String() string { return "List " + elemString(l.Elem) }

// Optional wraps a type that may be absent.
type Optional struct {
	Elem SchemaType
}

func (o *Optional) Kind() Kind     { return KindOptional }
func (o *Optional) String() string { return "Optional " + elemString(o.Elem) }

// Field is one named record member.
type Field struct {
	Name string
	Type SchemaType
}

// Record is a record type with ordered, uniquely named fields. Field order is
// preserved for declaration output; equivalence ignores it.
type Record struct {
	Fields []Field
}

func (r *Record) Kind() Kind { return KindRecord }

func (r *Record) String() string {
	if len(r.Fields) == 0 {
		return "{}"
	}
	b := &strings.Builder{}
	b.WriteString("{ ")
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(" : ")
		b.WriteString(f.Type.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Alternative is one union member; Type is nil for an empty alternative.
type Alternative struct {
	Name string
	Type SchemaType
}

// Union is a tagged union with ordered, uniquely named alternatives.
type Union struct {
	Alternatives []Alternative
}

func (u *Union) Kind() Kind { return KindUnion }

func (u *Union) String() string {
	if len(u.Alternatives) == 0 {
		return "<>"
	}
	b := &strings.Builder{}
	b.WriteString("< ")
	for i, a := range u.Alternatives {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(a.Name)
		if a.Type != nil {
			b.WriteString(" : ")
			b.WriteString(a.Type.String())
		}
	}
	b.WriteString(" >")
	return b.String()
}

// elemString parenthesizes wrapper elements so nested forms like
// "List (Optional Bool)" stay unambiguous.
func elemString(t SchemaType) string {
	switch t.Kind() {
	case KindList, KindOptional:
		return "(" + t.String() + ")"
	default:
		return t.String()
	}
}
