// Package codec applies a compiled batch's marshalling configuration to JSON
// documents at runtime. Wire form uses schema-level names (union alternative
// and record field names); host form uses the generated identifiers. A union
// value is an object whose "tag" member names the constructor; named fields
// sit beside the tag and an anonymous payload sits under "value".
package codec

import (
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	shapegen "github.com/shapegen/shapegen"
	"github.com/shapegen/shapegen/i18n"
)

// Set translates JSON documents for one compiled batch in both directions.
// References inside declarations resolve against the other members of the
// same set.
type Set struct {
	decls map[string]shapegen.Declaration
	cfgs  map[string]shapegen.MarshallingConfig
	// wireCtors inverts each declaration's constructor table: schema-level
	// alternative name -> emitted constructor identifier. Fields have no
	// inverted table; decoding walks the declaration's field list, so both
	// directions go through the config's Lookup and its fallback.
	wireCtors map[string]map[string]string
}

// NewSet indexes a compiled batch for translation.
func NewSet(batch []shapegen.Compiled) *Set {
	s := &Set{
		decls:     make(map[string]shapegen.Declaration, len(batch)),
		cfgs:      make(map[string]shapegen.MarshallingConfig, len(batch)),
		wireCtors: make(map[string]map[string]string, len(batch)),
	}
	for _, c := range batch {
		name := c.Declaration.Name
		s.decls[name] = c.Declaration
		s.cfgs[name] = c.Marshalling
		s.wireCtors[name] = invert(c.Marshalling.Constructors)
	}
	return s
}

func invert(t shapegen.NameTable) map[string]string {
	out := make(map[string]string, len(t))
	for emitted, orig := range t {
		out[orig] = emitted
	}
	return out
}

// DecodeWire rewrites a wire-level JSON document for the named declaration
// into its host-level form.
func (s *Set) DecodeWire(decl string, data []byte) ([]byte, error) {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return nil, shapegen.Issues{shapegen.Issue{
			Path:    "/",
			Code:    shapegen.CodeInvalidWireValue,
			Message: i18n.T(shapegen.CodeInvalidWireValue, nil),
			Hint:    err.Error(),
		}}
	}
	out, err := s.translateDecl(decl, v, "/", true)
	if err != nil {
		return nil, err
	}
	return j.Marshal(out)
}

// EncodeWire rewrites a host-level JSON document for the named declaration
// into its wire-level form. Unknown constructor or field identifiers hit the
// config's defensive fallback and abort with internal_name_mismatch.
func (s *Set) EncodeWire(decl string, data []byte) ([]byte, error) {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return nil, shapegen.Issues{shapegen.Issue{
			Path:    "/",
			Code:    shapegen.CodeInvalidWireValue,
			Message: i18n.T(shapegen.CodeInvalidWireValue, nil),
			Hint:    err.Error(),
		}}
	}
	out, err := s.translateDecl(decl, v, "/", false)
	if err != nil {
		return nil, err
	}
	return j.Marshal(out)
}

func wireIssue(path, hint string) error {
	return shapegen.Issues{shapegen.Issue{
		Path:    path,
		Code:    shapegen.CodeInvalidWireValue,
		Message: i18n.T(shapegen.CodeInvalidWireValue, nil),
		Hint:    hint,
	}}
}

// translateDecl rewrites one tagged value. toHost selects the direction:
// wire names to generated identifiers, or back.
func (s *Set) translateDecl(name string, v any, path string, toHost bool) (any, error) {
	decl, ok := s.decls[name]
	if !ok {
		return nil, wireIssue(path, "no declaration named '"+name+"' in this set")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, wireIssue(path, "expected object for "+name)
	}
	tag, ok := obj["tag"].(string)
	if !ok || tag == "" {
		return nil, wireIssue(path+"tag", "missing tag for "+name)
	}

	var emitted string
	if toHost {
		emitted, ok = s.wireCtors[name][tag]
		if !ok {
			return nil, wireIssue(path+"tag", "unknown constructor: '"+tag+"'")
		}
	} else {
		orig, err := s.cfgs[name].Constructors.Lookup(tag)
		if err != nil {
			return nil, err
		}
		emitted = tag
		tag = orig
	}

	ctor, ok := findConstructor(decl, emitted)
	if !ok {
		// The table knows the name but the declaration does not; same class
		// of inconsistency as a table miss.
		return nil, shapegen.Issues{shapegen.Issue{
			Path:    path + "tag",
			Code:    shapegen.CodeInternalNameMismatch,
			Message: i18n.T(shapegen.CodeInternalNameMismatch, nil),
			Hint:    "constructor '" + emitted + "' missing from declaration " + name,
		}}
	}

	outTag := tag
	if toHost {
		outTag = emitted
	}
	out := map[string]any{"tag": outTag}

	switch ctor.Shape() {
	case shapegen.Nullary:
		return out, nil
	case shapegen.Anonymous:
		payload, present := obj["value"]
		if !present {
			return nil, wireIssue(path+"value", "missing payload for constructor '"+outTag+"'")
		}
		tv, err := s.translateValue(ctor.Payload, payload, path+"value/", toHost)
		if err != nil {
			return nil, err
		}
		out["value"] = tv
		return out, nil
	default:
		for _, f := range ctor.Fields {
			inKey, outKey, err := s.fieldKeys(name, f.Name, toHost)
			if err != nil {
				return nil, err
			}
			fv, present := obj[inKey]
			if !present {
				return nil, wireIssue(path+inKey, "missing field for constructor '"+outTag+"'")
			}
			tv, err := s.translateValue(f.Type, fv, path+inKey+"/", toHost)
			if err != nil {
				return nil, err
			}
			out[outKey] = tv
		}
		return out, nil
	}
}

// fieldKeys resolves the object key to read and the key to write for one
// field, depending on direction.
func (s *Set) fieldKeys(decl, emitted string, toHost bool) (in, out string, err error) {
	orig, err := s.cfgs[decl].Fields.Lookup(emitted)
	if err != nil {
		return "", "", err
	}
	if toHost {
		return orig, emitted, nil
	}
	return emitted, orig, nil
}

func (s *Set) translateValue(t shapegen.HostType, v any, path string, toHost bool) (any, error) {
	switch tt := t.(type) {
	case shapegen.ListOf:
		arr, ok := v.([]any)
		if !ok {
			return nil, wireIssue(path, "expected array")
		}
		out := make([]any, 0, len(arr))
		for i, e := range arr {
			te, err := s.translateValue(tt.Elem, e, path+strconv.Itoa(i)+"/", toHost)
			if err != nil {
				return nil, err
			}
			out = append(out, te)
		}
		return out, nil
	case shapegen.OptionalOf:
		if v == nil {
			return nil, nil
		}
		return s.translateValue(tt.Elem, v, path, toHost)
	case shapegen.Reference:
		return s.translateDecl(tt.Name, v, path, toHost)
	case shapegen.HostBool:
		if _, ok := v.(bool); !ok {
			return nil, wireIssue(path, "expected boolean")
		}
		return v, nil
	case shapegen.HostText:
		if _, ok := v.(string); !ok {
			return nil, wireIssue(path, "expected string")
		}
		return v, nil
	case shapegen.HostNatural:
		switch n := v.(type) {
		case float64:
			if n < 0 {
				return nil, wireIssue(path, "expected non-negative number")
			}
			return v, nil
		case j.Number:
			if strings.HasPrefix(n.String(), "-") {
				return nil, wireIssue(path, "expected non-negative number")
			}
			return v, nil
		}
		return nil, wireIssue(path, "expected number")
	default:
		// Double, Integer.
		switch v.(type) {
		case float64, j.Number:
			return v, nil
		}
		return nil, wireIssue(path, "expected number")
	}
}

func findConstructor(d shapegen.Declaration, emitted string) (shapegen.Constructor, bool) {
	for _, c := range d.Constructors {
		if c.Name == emitted {
			return c, true
		}
	}
	return shapegen.Constructor{}, false
}
