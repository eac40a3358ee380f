package shapegen

type requestKind int

const (
	reqUnion requestKind = iota
	reqProduct
)

// TypeRequest is one unit of work in a batch: a named top-level type to
// synthesize from a resolved schema type. Construct values with UnionRequest
// or ProductRequest.
type TypeRequest struct {
	// DeclaredName is the user-chosen identifier for the generated type.
	// Uniqueness across the batch is validated by Compile.
	DeclaredName string
	// Constructor is the single constructor name of a product request; empty
	// for union requests, whose constructors come from the alternatives.
	Constructor string
	Schema      SchemaType

	kind requestKind
}

// UnionRequest requests a sum type. Schema must be a Union; each alternative
// becomes one constructor, in declared order.
func UnionRequest(declaredName string, schema SchemaType) TypeRequest {
	return TypeRequest{DeclaredName: declaredName, Schema: schema, kind: reqUnion}
}

// ProductRequest requests a single-constructor type. A Record schema
// contributes named fields; any other schema becomes one anonymous field; a
// nil schema yields a nullary constructor.
func ProductRequest(declaredName, constructorName string, schema SchemaType) TypeRequest {
	return TypeRequest{
		DeclaredName: declaredName,
		Constructor:  constructorName,
		Schema:       schema,
		kind:         reqProduct,
	}
}
