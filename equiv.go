package shapegen

// Equivalent reports whether a and b denote the same schema type. Records and
// unions compare as unordered collections of (name, type) pairs; wrappers
// compare elementwise; primitives compare by kind. The check is total over
// the finite trees the compiler accepts.
func Equivalent(a, b SchemaType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case *List:
		bt, ok := b.(*List)
		return ok && Equivalent(at.Elem, bt.Elem)
	case *Optional:
		bt, ok := b.(*Optional)
		return ok && Equivalent(at.Elem, bt.Elem)
	case *Record:
		bt, ok := b.(*Record)
		return ok && equivalentRecords(at, bt)
	case *Union:
		bt, ok := b.(*Union)
		return ok && equivalentUnions(at, bt)
	default:
		// Primitives carry no payload.
		return true
	}
}

// Member names are unique within one record, so a length check plus per-name
// lookup is exact set comparison.
func equivalentRecords(a, b *Record) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for _, f := range a.Fields {
		bt, ok := recordField(b, f.Name)
		if !ok || !Equivalent(f.Type, bt) {
			return false
		}
	}
	return true
}

func equivalentUnions(a, b *Union) bool {
	if len(a.Alternatives) != len(b.Alternatives) {
		return false
	}
	for _, alt := range a.Alternatives {
		bt, ok := unionAlternative(b, alt.Name)
		if !ok {
			return false
		}
		if (alt.Type == nil) != (bt == nil) {
			return false
		}
		if alt.Type != nil && !Equivalent(alt.Type, bt) {
			return false
		}
	}
	return true
}

func recordField(r *Record, name string) (SchemaType, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

func unionAlternative(u *Union, name string) (SchemaType, bool) {
	for _, a := range u.Alternatives {
		if a.Name == name {
			return a.Type, true
		}
	}
	return nil, false
}
