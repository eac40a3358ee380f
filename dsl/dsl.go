// Package dsl provides small builders for assembling resolved schema types by
// hand, mirroring the shapes an upstream schema resolver would produce.
package dsl

import (
	shapegen "github.com/shapegen/shapegen"
	"github.com/shapegen/shapegen/i18n"
)

// Bool returns the Bool primitive.
func Bool() shapegen.SchemaType { return shapegen.Bool{} }

// Double returns the Double primitive.
func Double() shapegen.SchemaType { return shapegen.Double{} }

// Integer returns the Integer primitive.
func Integer() shapegen.SchemaType { return shapegen.Integer{} }

// Natural returns the Natural primitive.
func Natural() shapegen.SchemaType { return shapegen.Natural{} }

// Text returns the Text primitive.
func Text() shapegen.SchemaType { return shapegen.Text{} }

// List wraps elem in a list type.
func List(elem shapegen.SchemaType) shapegen.SchemaType {
	return &shapegen.List{Elem: elem}
}

// Optional wraps elem in an optional type.
func Optional(elem shapegen.SchemaType) shapegen.SchemaType {
	return &shapegen.Optional{Elem: elem}
}

// RecordBuilder accumulates ordered record fields.
type RecordBuilder struct {
	fields []shapegen.Field
}

// Record starts a record type.
func Record() *RecordBuilder { return &RecordBuilder{} }

// Field appends one named field. Declaration order is preserved.
func (b *RecordBuilder) Field(name string, t shapegen.SchemaType) *RecordBuilder {
	b.fields = append(b.fields, shapegen.Field{Name: name, Type: t})
	return b
}

// Build validates field-name uniqueness and returns the record type.
func (b *RecordBuilder) Build() (shapegen.SchemaType, error) {
	seen := make(map[string]struct{}, len(b.fields))
	for _, f := range b.fields {
		if _, dup := seen[f.Name]; dup {
			return nil, shapegen.Issues{shapegen.Issue{
				Path:    "/" + f.Name,
				Code:    shapegen.CodeDuplicateMemberName,
				Message: i18n.T(shapegen.CodeDuplicateMemberName, nil),
				Hint:    "record field names must be unique",
			}}
		}
		seen[f.Name] = struct{}{}
	}
	return &shapegen.Record{Fields: append([]shapegen.Field(nil), b.fields...)}, nil
}

// MustBuild is Build that panics on error, for statically known schemas.
func (b *RecordBuilder) MustBuild() shapegen.SchemaType {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// UnionBuilder accumulates ordered union alternatives.
type UnionBuilder struct {
	alts []shapegen.Alternative
}

// Union starts a union type.
func Union() *UnionBuilder { return &UnionBuilder{} }

// Alternative appends one alternative carrying a payload type.
func (b *UnionBuilder) Alternative(name string, t shapegen.SchemaType) *UnionBuilder {
	b.alts = append(b.alts, shapegen.Alternative{Name: name, Type: t})
	return b
}

// Tag appends an empty alternative carrying no payload.
func (b *UnionBuilder) Tag(name string) *UnionBuilder {
	b.alts = append(b.alts, shapegen.Alternative{Name: name})
	return b
}

// Build validates alternative-name uniqueness and returns the union type.
func (b *UnionBuilder) Build() (shapegen.SchemaType, error) {
	seen := make(map[string]struct{}, len(b.alts))
	for _, a := range b.alts {
		if _, dup := seen[a.Name]; dup {
			return nil, shapegen.Issues{shapegen.Issue{
				Path:    "/" + a.Name,
				Code:    shapegen.CodeDuplicateMemberName,
				Message: i18n.T(shapegen.CodeDuplicateMemberName, nil),
				Hint:    "union alternative names must be unique",
			}}
		}
		seen[a.Name] = struct{}{}
	}
	return &shapegen.Union{Alternatives: append([]shapegen.Alternative(nil), b.alts...)}, nil
}

// MustBuild is Build that panics on error, for statically known schemas.
func (b *UnionBuilder) MustBuild() shapegen.SchemaType {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
