package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type string `json:"type,omitempty"`
	Enum []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Nullable mirrors the OpenAPI extension for optional values.
	Nullable bool `json:"nullable,omitempty"`
}
