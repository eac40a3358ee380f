package shapegen

import "github.com/shapegen/shapegen/i18n"

// NameTable maps emitted identifiers back to the original schema-level
// names. Tables are complete by construction: declaration synthesis and
// config synthesis apply the same modifier to the same name set.
type NameTable map[string]string

// Lookup returns the schema-level name behind an emitted identifier. A miss
// means declaration and config synthesis disagreed about the name set; it is
// reported as a hard internal_name_mismatch, never ignored.
func (t NameTable) Lookup(emitted string) (string, error) {
	if orig, ok := t[emitted]; ok {
		return orig, nil
	}
	return "", Issues{Issue{
		Path:    "/",
		Code:    CodeInternalNameMismatch,
		Message: i18n.T(CodeInternalNameMismatch, nil),
		Hint:    "unknown identifier: '" + emitted + "'",
	}}
}

// MarshallingConfig carries the name-mapping tables a wire codec uses to
// translate constructor and field names between the schema level and the
// generated declaration.
type MarshallingConfig struct {
	Constructors NameTable
	Fields       NameTable
}

// synthesizeConfig builds the name tables for one request. Field names are
// collected across every record-typed alternative, not just one: a
// polymorphic decoder may see any alternative, so the table is the union.
func synthesizeConfig(req TypeRequest, opts GenerateOptions) (MarshallingConfig, error) {
	cfg := MarshallingConfig{Constructors: NameTable{}, Fields: NameTable{}}
	ctorMod := opts.constructorModifier()
	fieldMod := opts.fieldModifier()

	addFields := func(rec *Record, path string) error {
		for _, f := range rec.Fields {
			if err := addName(cfg.Fields, fieldMod, f.Name, path); err != nil {
				return err
			}
		}
		return nil
	}

	path := "/" + req.DeclaredName
	if req.kind == reqProduct {
		if err := addName(cfg.Constructors, ctorMod, req.Constructor, path); err != nil {
			return MarshallingConfig{}, err
		}
		if rec, ok := req.Schema.(*Record); ok {
			if err := addFields(rec, path); err != nil {
				return MarshallingConfig{}, err
			}
		}
		return cfg, nil
	}

	u, ok := req.Schema.(*Union)
	if !ok {
		// synthesize reports this first; guard anyway so config synthesis is
		// safe to call on its own.
		return MarshallingConfig{}, Issues{Issue{
			Path:    path,
			Code:    CodeNotAUnionType,
			Message: i18n.T(CodeNotAUnionType, nil),
			Schema:  req.Schema,
		}}
	}
	for _, alt := range u.Alternatives {
		if err := addName(cfg.Constructors, ctorMod, alt.Name, path); err != nil {
			return MarshallingConfig{}, err
		}
		if rec, ok := alt.Type.(*Record); ok {
			if err := addFields(rec, path+"/"+alt.Name); err != nil {
				return MarshallingConfig{}, err
			}
		}
	}
	return cfg, nil
}

// addName inserts modifier(name) -> name. Two distinct names collapsing onto
// one emitted identifier would desynchronize the declaration from its config,
// so the collision is rejected instead of silently overwritten.
func addName(tbl NameTable, mod func(string) string, name, path string) error {
	key := mod(name)
	if prev, ok := tbl[key]; ok && prev != name {
		return Issues{Issue{
			Path:    path,
			Code:    CodeInternalNameMismatch,
			Message: i18n.T(CodeInternalNameMismatch, nil),
			Hint:    "modifier maps both '" + prev + "' and '" + name + "' to '" + key + "'",
		}}
	}
	tbl[key] = name
	return nil
}
