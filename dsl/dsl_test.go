package dsl_test

import (
	"testing"

	shapegen "github.com/shapegen/shapegen"
	g "github.com/shapegen/shapegen/dsl"
)

func TestRecordBuilder_PreservesOrder(t *testing.T) {
	rec, err := g.Record().
		Field("name", g.Text()).
		Field("age", g.Natural()).
		Field("tags", g.List(g.Text())).
		Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	r := rec.(*shapegen.Record)
	if r.Fields[0].Name != "name" || r.Fields[1].Name != "age" || r.Fields[2].Name != "tags" {
		t.Fatalf("field order not preserved: %+v", r.Fields)
	}
}

func TestRecordBuilder_DuplicateField(t *testing.T) {
	_, err := g.Record().
		Field("name", g.Text()).
		Field("name", g.Bool()).
		Build()
	iss, ok := shapegen.AsIssues(err)
	if !ok || iss[0].Code != shapegen.CodeDuplicateMemberName {
		t.Fatalf("expected duplicate_member_name, got %v", err)
	}
}

func TestUnionBuilder_TagsAndPayloads(t *testing.T) {
	u, err := g.Union().
		Tag("Point").
		Alternative("Circle", g.Double()).
		Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	uu := u.(*shapegen.Union)
	if uu.Alternatives[0].Type != nil {
		t.Fatalf("Tag must produce an empty alternative")
	}
	if uu.Alternatives[1].Type == nil {
		t.Fatalf("Alternative must carry its payload")
	}
}

func TestUnionBuilder_DuplicateAlternative(t *testing.T) {
	_, err := g.Union().Tag("A").Tag("A").Build()
	iss, ok := shapegen.AsIssues(err)
	if !ok || iss[0].Code != shapegen.CodeDuplicateMemberName {
		t.Fatalf("expected duplicate_member_name, got %v", err)
	}
}

func TestBuilders_ComposeWithCompile(t *testing.T) {
	dept := g.Union().Tag("Sales").Tag("Engineering").MustBuild()
	emp := g.Record().
		Field("name", g.Text()).
		Field("department", g.Union().Tag("Sales").Tag("Engineering").MustBuild()).
		MustBuild()
	batch, err := shapegen.Compile(
		[]shapegen.TypeRequest{
			shapegen.UnionRequest("Department", dept),
			shapegen.ProductRequest("Employee", "MakeEmployee", emp),
		},
		shapegen.DefaultOptions(),
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	field := batch[1].Declaration.Constructors[0].Fields[1]
	if ref, ok := field.Type.(shapegen.Reference); !ok || ref.Name != "Department" {
		t.Fatalf("expected Department reference, got %#v", field.Type)
	}
}
