package shapegen

// HostKind identifies a host type node.
type HostKind int

const (
	HostKindBool HostKind = iota
	HostKindDouble
	HostKindInteger
	HostKindNatural
	HostKindText
	HostKindList
	HostKindOptional
	HostKindReference
)

// HostType is the compiler's output type algebra: the primitives, the two
// generic wrappers, and non-owning references to sibling declarations. The
// compiler never dereferences a Reference; the consumer wires it to the
// declaration it names.
type HostType interface {
	HostKind() HostKind
	// GoType renders the Go type expression for this host type.
	GoType() string
}

// HostBool maps to Go bool.
type HostBool struct{}

func (HostBool) HostKind() HostKind { return HostKindBool }
func (HostBool) GoType() string     { return "bool" }

// HostDouble maps to Go float64.
type HostDouble struct{}

func (HostDouble) HostKind() HostKind { return HostKindDouble }
func (HostDouble) GoType() string     { return "float64" }

// HostInteger maps to Go int64.
type HostInteger struct{}

func (HostInteger) HostKind() HostKind { return HostKindInteger }
func (HostInteger) GoType() string     { return "int64" }

// HostNatural maps to Go uint64.
type HostNatural struct{}

func (HostNatural) HostKind() HostKind { return HostKindNatural }
func (HostNatural) GoType() string     { return "uint64" }

// HostText maps to Go string.
type HostText struct{}

func (HostText) HostKind() HostKind { return HostKindText }
func (HostText) GoType() string     { return "string" }

// ListOf is a slice of the element type.
type ListOf struct {
	Elem HostType
}

func (l ListOf) HostKind() HostKind { return HostKindList }
func (l ListOf) GoType() string     { return "[]" + l.Elem.GoType() }

// OptionalOf is a pointer to the element type; nil encodes absence.
type OptionalOf struct {
	Elem HostType
}

func (o OptionalOf) HostKind() HostKind { return HostKindOptional }
func (o OptionalOf) GoType() string     { return "*" + o.Elem.GoType() }

// Reference names a sibling declaration in the same batch.
type Reference struct {
	Name string
}

func (r Reference) HostKind() HostKind { return HostKindReference }
func (r Reference) GoType() string     { return r.Name }
