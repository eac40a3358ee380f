package shapegen

import "github.com/shapegen/shapegen/i18n"

// GenerateOptions configures identifier derivation and which marshalling
// directions downstream rendering emits. A nil modifier is the identity. The
// options value is passed explicitly to every synthesis call; there is no
// shared state.
type GenerateOptions struct {
	// ConstructorModifier derives the emitted constructor identifier from a
	// schema-level alternative or constructor name.
	ConstructorModifier func(string) string
	// FieldModifier derives the emitted field identifier from a schema-level
	// field name.
	FieldModifier func(string) string
	// EmitEncoder and EmitDecoder select which marshalling directions the
	// source renderer generates. The compiler itself only threads them
	// through.
	EmitEncoder bool
	EmitDecoder bool
}

// DefaultOptions returns identity modifiers with both marshalling directions
// enabled.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{EmitEncoder: true, EmitDecoder: true}
}

func (o GenerateOptions) constructorModifier() func(string) string {
	if o.ConstructorModifier != nil {
		return o.ConstructorModifier
	}
	return identity
}

func (o GenerateOptions) fieldModifier() func(string) string {
	if o.FieldModifier != nil {
		return o.FieldModifier
	}
	return identity
}

func identity(s string) string { return s }

// Compile synthesizes declarations and marshalling configs for a batch of
// type requests. Requests are processed in input order and every request sees
// the entire batch as sibling context, so forward references between sibling
// types work regardless of order. The first diagnostic aborts the batch; no
// partial output is returned.
func Compile(requests []TypeRequest, opts GenerateOptions) ([]Compiled, error) {
	if iss := checkDeclaredNames(requests); iss != nil {
		return nil, iss
	}
	out := make([]Compiled, 0, len(requests))
	for _, req := range requests {
		decl, err := synthesize(req, requests, opts)
		if err != nil {
			return nil, err
		}
		cfg, err := synthesizeConfig(req, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, Compiled{Declaration: decl, Marshalling: cfg})
	}
	return out, nil
}

func checkDeclaredNames(requests []TypeRequest) Issues {
	seen := make(map[string]struct{}, len(requests))
	for _, r := range requests {
		if _, dup := seen[r.DeclaredName]; dup {
			return Issues{Issue{
				Path:    "/" + r.DeclaredName,
				Code:    CodeDuplicateDeclaredName,
				Message: i18n.T(CodeDuplicateDeclaredName, nil),
				Hint:    "declared names must be unique within a batch",
			}}
		}
		seen[r.DeclaredName] = struct{}{}
	}
	return nil
}

// synthesize produces the declaration for one request against the batch.
func synthesize(req TypeRequest, siblings []TypeRequest, opts GenerateOptions) (Declaration, error) {
	if req.kind == reqProduct {
		// A product request is a union with exactly one alternative.
		c, err := constructor(req.Constructor, req.Schema, req, siblings, opts)
		if err != nil {
			return Declaration{}, err
		}
		return Declaration{Name: req.DeclaredName, Constructors: []Constructor{c}}, nil
	}
	u, ok := req.Schema.(*Union)
	if !ok {
		return Declaration{}, Issues{Issue{
			Path:    "/" + req.DeclaredName,
			Code:    CodeNotAUnionType,
			Message: i18n.T(CodeNotAUnionType, nil),
			Hint:    "declare non-union types with a product request",
			Schema:  req.Schema,
		}}
	}
	ctors := make([]Constructor, 0, len(u.Alternatives))
	for _, alt := range u.Alternatives {
		c, err := constructor(alt.Name, alt.Type, req, siblings, opts)
		if err != nil {
			return Declaration{}, err
		}
		ctors = append(ctors, c)
	}
	return Declaration{Name: req.DeclaredName, Constructors: ctors}, nil
}

// constructor builds one constructor from an alternative payload. An exact
// sibling match takes priority over decomposing a record payload into named
// fields, so a payload that coincides with a sibling's declared type becomes
// a single reference field rather than a copy of its structure.
func constructor(name string, payload SchemaType, self TypeRequest, siblings []TypeRequest, opts GenerateOptions) (Constructor, error) {
	emitted := opts.constructorModifier()(name)
	if payload == nil {
		return Constructor{Name: emitted}, nil
	}
	path := "/" + self.DeclaredName + "/" + name
	if ref, ok := matchSibling(payload, siblings, self.DeclaredName); ok {
		return Constructor{Name: emitted, Payload: ref}, nil
	}
	if rec, ok := payload.(*Record); ok {
		fieldMod := opts.fieldModifier()
		fields := make([]HostField, 0, len(rec.Fields))
		for _, f := range rec.Fields {
			ht, err := resolveNested(f.Type, siblings, self.DeclaredName, path+"/"+f.Name)
			if err != nil {
				return Constructor{}, err
			}
			fields = append(fields, HostField{Name: fieldMod(f.Name), Type: ht})
		}
		return Constructor{Name: emitted, Fields: fields}, nil
	}
	ht, err := resolveNested(payload, siblings, self.DeclaredName, path)
	if err != nil {
		return Constructor{}, err
	}
	return Constructor{Name: emitted, Payload: ht}, nil
}
