package gen

import (
	"bytes"
	"strings"
	"testing"

	shapegen "github.com/shapegen/shapegen"
	g "github.com/shapegen/shapegen/dsl"
)

func staffBatch(t *testing.T) []shapegen.Compiled {
	t.Helper()
	dept := g.Union().Tag("Sales").Tag("Engineering").MustBuild()
	emp := g.Record().
		Field("name", g.Text()).
		Field("department", g.Union().Tag("Sales").Tag("Engineering").MustBuild()).
		MustBuild()
	opts := shapegen.DefaultOptions()
	opts.FieldModifier = func(s string) string { return strings.ToUpper(s[:1]) + s[1:] }
	batch, err := shapegen.Compile(
		[]shapegen.TypeRequest{
			shapegen.UnionRequest("Department", dept),
			shapegen.ProductRequest("Employee", "MakeEmployee", emp),
		},
		opts,
	)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	return batch
}

func TestRenderFile_SumAndStruct(t *testing.T) {
	out, err := RenderFile("staff", staffBatch(t), shapegen.DefaultOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"package staff",
		"type Department interface {",
		"isDepartment()",
		"type Sales struct{}",
		"type Employee struct {",
		"`json:\"name\"`",
		"Department Department `json:\"department\"`",
		"var departmentConstructorNames = map[string]string{",
		"func MarshalDepartment(v Department) ([]byte, error)",
		"func UnmarshalEmployee(data []byte) (Employee, error)",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}
}

func TestRenderFile_FlagsSuppressCodecs(t *testing.T) {
	opts := shapegen.DefaultOptions()
	opts.EmitEncoder = false
	opts.EmitDecoder = false
	out, err := RenderFile("staff", staffBatch(t), opts)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	if strings.Contains(src, "MarshalDepartment") || strings.Contains(src, "UnmarshalEmployee") {
		t.Fatalf("codec functions emitted despite disabled flags:\n%s", src)
	}
	if strings.Contains(src, "goccy") {
		t.Fatalf("json import should be dropped when no codec is emitted:\n%s", src)
	}
}

func TestRenderFile_AnonymousPayload(t *testing.T) {
	batch, err := shapegen.Compile(
		[]shapegen.TypeRequest{
			shapegen.UnionRequest("Grid", g.Union().
				Alternative("Cells", g.List(g.List(g.Bool()))).
				Tag("Empty").
				MustBuild()),
		},
		shapegen.DefaultOptions(),
	)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	out, err := RenderFile("grid", batch, shapegen.DefaultOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "Value [][]bool `json:\"value\"`") {
		t.Fatalf("anonymous payload not wrapped:\n%s", out)
	}
}

func TestRenderFile_Deterministic(t *testing.T) {
	batch := staffBatch(t)
	a, err := RenderFile("staff", batch, shapegen.DefaultOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b, err := RenderFile("staff", batch, shapegen.DefaultOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("render is not deterministic")
	}
}

func TestRenderFile_RejectsBadIdentifiers(t *testing.T) {
	opts := shapegen.DefaultOptions()
	opts.FieldModifier = func(s string) string { return s + "-x" }
	batch, err := shapegen.Compile(
		[]shapegen.TypeRequest{
			shapegen.ProductRequest("Employee", "MakeEmployee",
				g.Record().Field("name", g.Text()).MustBuild()),
		},
		opts,
	)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if _, err := RenderFile("staff", batch, opts); err == nil {
		t.Fatalf("expected an invalid-identifier error")
	}
}

func TestRenderFile_RejectsBadPackageName(t *testing.T) {
	if _, err := RenderFile("not a package", nil, shapegen.DefaultOptions()); err == nil {
		t.Fatalf("expected an invalid package name error")
	}
}
