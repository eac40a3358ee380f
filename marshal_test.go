package shapegen_test

import (
	"testing"

	shapegen "github.com/shapegen/shapegen"
)

func TestNameTable_LookupFallback(t *testing.T) {
	tbl := shapegen.NameTable{"Sales": "Sales"}
	if _, err := tbl.Lookup("Sales"); err != nil {
		t.Fatalf("known name should resolve: %v", err)
	}
	_, err := tbl.Lookup("Accounting")
	iss, ok := shapegen.AsIssues(err)
	if !ok || iss[0].Code != shapegen.CodeInternalNameMismatch {
		t.Fatalf("miss must be a hard internal_name_mismatch, got %v", err)
	}
}

func TestCompile_FieldTableUnionsAllAlternatives(t *testing.T) {
	// Field names are collected across every record-typed alternative, not
	// just one; a polymorphic decoder may see any alternative.
	batch, err := shapegen.Compile(
		[]shapegen.TypeRequest{
			shapegen.UnionRequest("Shape", &shapegen.Union{Alternatives: []shapegen.Alternative{
				{Name: "Circle", Type: &shapegen.Record{Fields: []shapegen.Field{
					{Name: "radius", Type: shapegen.Double{}},
				}}},
				{Name: "Rect", Type: &shapegen.Record{Fields: []shapegen.Field{
					{Name: "width", Type: shapegen.Double{}},
					{Name: "height", Type: shapegen.Double{}},
				}}},
			}}),
		},
		shapegen.DefaultOptions(),
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	fields := batch[0].Marshalling.Fields
	for _, name := range []string{"radius", "width", "height"} {
		if orig, err := fields.Lookup(name); err != nil || orig != name {
			t.Fatalf("field table missing %q: %q, %v", name, orig, err)
		}
	}
}

func TestCompile_ModifierCollisionRejected(t *testing.T) {
	opts := shapegen.DefaultOptions()
	opts.ConstructorModifier = func(string) string { return "Same" }
	_, err := shapegen.Compile(
		[]shapegen.TypeRequest{
			shapegen.UnionRequest("Department", &shapegen.Union{Alternatives: []shapegen.Alternative{
				{Name: "Sales"},
				{Name: "Engineering"},
			}}),
		},
		opts,
	)
	iss, ok := shapegen.AsIssues(err)
	if !ok || iss[0].Code != shapegen.CodeInternalNameMismatch {
		t.Fatalf("colliding modifier outputs must be rejected, got %v", err)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := shapegen.Issues{
		{Path: "/A", Code: shapegen.CodeNotAUnionType, Schema: shapegen.Bool{}},
		{Path: "/B", Code: shapegen.CodeUnsupportedNestedType},
		{Path: "/C", Code: shapegen.CodeDuplicateDeclaredName},
		{Path: "/D", Code: shapegen.CodeDuplicateMemberName},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if want := "not_a_union_type at /A: Bool"; len(s) < len(want) || s[:len(want)] != want {
		t.Fatalf("summary should lead with the first issue and its schema, got %q", s)
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	var iss shapegen.Issues
	iss = shapegen.AppendIssues(iss, shapegen.Issue{Path: "/", Code: shapegen.CodeInvalidWireValue})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}
