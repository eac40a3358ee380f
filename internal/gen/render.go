package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	shapegen "github.com/shapegen/shapegen"
)

// RenderFile renders a compiled batch into a single Go source file.
// Single-constructor declarations become structs (or defined payload
// wrappers), multi-constructor declarations become an interface plus one type
// per constructor. Field tags carry the wire-level names so the generated
// types marshal straight into the codec's wire form.
func RenderFile(pkg string, batch []shapegen.Compiled, opts shapegen.GenerateOptions) ([]byte, error) {
	view, err := buildFileView(pkg, batch, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: generated source does not format: %w", err)
	}
	return src, nil
}

type fileView struct {
	Package   string
	NeedsJSON bool
	Decls     []declView
}

type declView struct {
	Name        string
	Sum         bool
	Variants    []variantView
	CtorTable   []tableEntry
	FieldTable  []tableEntry
	VarPrefix   string
	EmitEncoder bool
	EmitDecoder bool
}

type variantView struct {
	TypeName  string
	WireTag   string
	Anonymous string // Go type expression of an unnamed payload; "" otherwise
	Fields    []fieldView
}

type fieldView struct {
	Ident string
	Type  string
	Tag   string
}

type tableEntry struct {
	Emitted string
	Wire    string
}

func buildFileView(pkg string, batch []shapegen.Compiled, opts shapegen.GenerateOptions) (*fileView, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("gen: %q is not a valid package name", pkg)
	}
	view := &fileView{Package: pkg}
	for _, c := range batch {
		dv, err := buildDeclView(c, opts)
		if err != nil {
			return nil, err
		}
		if dv.EmitEncoder || dv.EmitDecoder {
			view.NeedsJSON = true
		}
		view.Decls = append(view.Decls, *dv)
	}
	return view, nil
}

func buildDeclView(c shapegen.Compiled, opts shapegen.GenerateOptions) (*declView, error) {
	decl := c.Declaration
	if err := checkIdent(decl.Name); err != nil {
		return nil, err
	}
	dv := &declView{
		Name:        decl.Name,
		Sum:         len(decl.Constructors) > 1,
		VarPrefix:   lowerFirst(decl.Name),
		EmitEncoder: opts.EmitEncoder,
		EmitDecoder: opts.EmitDecoder,
	}
	seenFields := map[string]struct{}{}
	for _, ctor := range decl.Constructors {
		wire, err := c.Marshalling.Constructors.Lookup(ctor.Name)
		if err != nil {
			return nil, err
		}
		typeName := decl.Name
		if dv.Sum {
			typeName = ctor.Name
		}
		if err := checkIdent(typeName); err != nil {
			return nil, err
		}
		vv := variantView{TypeName: typeName, WireTag: wire}
		if ctor.Shape() == shapegen.Anonymous {
			vv.Anonymous = ctor.Payload.GoType()
		}
		for _, f := range ctor.Fields {
			if err := checkIdent(f.Name); err != nil {
				return nil, err
			}
			tag, err := c.Marshalling.Fields.Lookup(f.Name)
			if err != nil {
				return nil, err
			}
			vv.Fields = append(vv.Fields, fieldView{Ident: f.Name, Type: f.Type.GoType(), Tag: tag})
			if _, dup := seenFields[f.Name]; !dup {
				seenFields[f.Name] = struct{}{}
				dv.FieldTable = append(dv.FieldTable, tableEntry{Emitted: f.Name, Wire: tag})
			}
		}
		dv.CtorTable = append(dv.CtorTable, tableEntry{Emitted: ctor.Name, Wire: wire})
		dv.Variants = append(dv.Variants, vv)
	}
	return dv, nil
}

func checkIdent(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("gen: %q is not a valid Go identifier; adjust the name modifiers", name)
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by shapegen. DO NOT EDIT.

package {{.Package}}

{{if .NeedsJSON}}import (
	"fmt"

	json "github.com/goccy/go-json"
)
{{end}}
{{range .Decls}}{{template "decl" .}}{{end}}
{{define "variantBody"}}{{if .Anonymous}}struct {
	Value {{.Anonymous}} ` + "`json:\"value\"`" + `
}{{else if .Fields}}struct {
{{range .Fields}}	{{.Ident}} {{.Type}} ` + "`json:\"{{.Tag}}\"`" + `
{{end}}}{{else}}struct{}{{end}}{{end}}
{{define "decl"}}
{{if .Sum}}// {{.Name}} is the sum of its constructors.
type {{.Name}} interface {
	is{{.Name}}()
}

{{range .Variants}}type {{.TypeName}} {{template "variantBody" .}}

func ({{.TypeName}}) is{{$.Name}}() {}

{{end}}{{else}}{{range .Variants}}type {{.TypeName}} {{template "variantBody" .}}
{{end}}{{end}}
// {{.VarPrefix}}ConstructorNames maps generated constructor identifiers to
// wire-level names.
var {{.VarPrefix}}ConstructorNames = map[string]string{
{{range .CtorTable}}	{{printf "%q" .Emitted}}: {{printf "%q" .Wire}},
{{end}}}
{{if .FieldTable}}
// {{.VarPrefix}}FieldNames maps generated field identifiers to wire-level
// names.
var {{.VarPrefix}}FieldNames = map[string]string{
{{range .FieldTable}}	{{printf "%q" .Emitted}}: {{printf "%q" .Wire}},
{{end}}}
{{end}}
{{if .EmitEncoder}}{{template "encoder" .}}{{end}}
{{if .EmitDecoder}}{{template "decoder" .}}{{end}}
{{end}}
{{define "encoder"}}
// Marshal{{.Name}} encodes v into its wire-level JSON form.
func Marshal{{.Name}}(v {{.Name}}) ([]byte, error) {
{{if .Sum}}	var tag string
	switch v.(type) {
{{range .Variants}}	case {{.TypeName}}:
		tag = {{printf "%q" .WireTag}}
{{end}}	default:
		return nil, fmt.Errorf("unknown {{.Name}} constructor %T", v)
	}
{{else}}{{range .Variants}}	tag := {{printf "%q" .WireTag}}
{{end}}{{end}}	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	m["tag"] = tag
	return json.Marshal(m)
}
{{end}}
{{define "decoder"}}
// Unmarshal{{.Name}} decodes a wire-level JSON document into a {{.Name}}.
func Unmarshal{{.Name}}(data []byte) ({{.Name}}, error) {
	var probe struct {
		Tag string ` + "`json:\"tag\"`" + `
	}
{{if .Sum}}	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Tag {
{{range .Variants}}	case {{printf "%q" .WireTag}}:
		var v {{.TypeName}}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
{{end}}	}
	return nil, fmt.Errorf("unknown {{.Name}} tag %q", probe.Tag)
{{else}}{{range .Variants}}	var v {{.TypeName}}
	if err := json.Unmarshal(data, &probe); err != nil {
		return v, err
	}
	if probe.Tag != {{printf "%q" .WireTag}} {
		return v, fmt.Errorf("unknown {{$.Name}} tag %q", probe.Tag)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
{{end}}{{end}}}
{{end}}`))
