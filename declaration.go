package shapegen

// ConstructorShape reports the field layout of a constructor.
type ConstructorShape int

const (
	Nullary ConstructorShape = iota
	Anonymous
	Named
)

// HostField is one named field of a constructor. Name is the emitted
// identifier (the field modifier's output); the original schema name lives in
// the declaration's marshalling config.
type HostField struct {
	Name string
	Type HostType
}

// Constructor is one constructor of a generated declaration. Exactly one of
// the three layouts applies: no fields, a single unnamed payload, or a list
// of named fields.
type Constructor struct {
	Name string
	// Payload is the single unnamed field type of an anonymous constructor;
	// nil otherwise.
	Payload HostType
	// Fields are the named fields; empty for nullary and anonymous
	// constructors.
	Fields []HostField
}

// Shape reports which of the three layouts the constructor has.
func (c Constructor) Shape() ConstructorShape {
	switch {
	case c.Payload != nil:
		return Anonymous
	case len(c.Fields) > 0:
		return Named
	default:
		return Nullary
	}
}

// Declaration is one generated type: a name and its ordered constructors.
// References inside field types are resolved by the consumer against sibling
// declarations of the same batch.
type Declaration struct {
	Name         string
	Constructors []Constructor
}

// Compiled pairs a declaration with its marshalling configuration.
type Compiled struct {
	Declaration Declaration
	Marshalling MarshallingConfig
}
