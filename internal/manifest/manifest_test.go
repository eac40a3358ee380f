package manifest

import (
	"strings"
	"testing"

	shapegen "github.com/shapegen/shapegen"
)

const staffManifest = `
package: staff
types:
  - name: Department
    schema:
      union:
        Sales:
        Engineering:
        Marketing:
  - name: Employee
    constructor: MakeEmployee
    schema:
      record:
        name: Text
        department: { ref: Department }
        scores: { list: Double }
        nickname: { optional: Text }
`

func TestLoad_Staff(t *testing.T) {
	m, err := Load([]byte(staffManifest))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if m.Package != "staff" || len(m.Requests) != 2 {
		t.Fatalf("unexpected manifest: %+v", m)
	}

	dept := m.Requests[0].Schema.(*shapegen.Union)
	if dept.Alternatives[0].Name != "Sales" ||
		dept.Alternatives[1].Name != "Engineering" ||
		dept.Alternatives[2].Name != "Marketing" {
		t.Fatalf("alternative order not preserved: %+v", dept.Alternatives)
	}

	emp := m.Requests[1].Schema.(*shapegen.Record)
	if emp.Fields[0].Name != "name" || emp.Fields[1].Name != "department" {
		t.Fatalf("field order not preserved: %+v", emp.Fields)
	}
	// ref substitutes the sibling's schema structurally, so compilation will
	// sibling-match it back to Department.
	if !shapegen.Equivalent(emp.Fields[1].Type, m.Requests[0].Schema) {
		t.Fatalf("ref did not copy the sibling schema")
	}

	batch, err := shapegen.Compile(m.Requests, shapegen.DefaultOptions())
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	field := batch[1].Declaration.Constructors[0].Fields[1]
	if ref, ok := field.Type.(shapegen.Reference); !ok || ref.Name != "Department" {
		t.Fatalf("expected Department reference, got %#v", field.Type)
	}
}

func TestLoad_NullaryProduct(t *testing.T) {
	m, err := Load([]byte("package: p\ntypes:\n  - name: Unit\n    constructor: MakeUnit\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if m.Requests[0].Schema != nil || m.Requests[0].Constructor != "MakeUnit" {
		t.Fatalf("expected nullary product request: %+v", m.Requests[0])
	}
}

func TestLoad_RecursiveRef(t *testing.T) {
	src := `
package: p
types:
  - name: Loop
    schema:
      union:
        Next: { ref: Loop }
`
	_, err := Load([]byte(src))
	if err == nil || !strings.Contains(err.Error(), "recursive ref") {
		t.Fatalf("expected recursive ref error, got %v", err)
	}
}

func TestLoad_DuplicateMemberNames(t *testing.T) {
	cases := []string{
		"package: p\ntypes:\n  - name: A\n    constructor: MakeA\n    schema:\n      record:\n        x: Bool\n        x: Text\n",
		"package: p\ntypes:\n  - name: A\n    schema:\n      union:\n        On:\n        On:\n",
	}
	for _, src := range cases {
		_, err := Load([]byte(src))
		iss, ok := shapegen.AsIssues(err)
		if !ok || iss[0].Code != shapegen.CodeDuplicateMemberName {
			t.Fatalf("source %q: expected duplicate_member_name, got %v", src, err)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"types:\n  - name: A\n    schema: Bool\n", "missing package"},
		{"package: p\ntypes:\n  - schema: Bool\n", "missing name"},
		{"package: p\ntypes:\n  - name: A\n    schema: Strings\n", "unknown primitive"},
		{"package: p\ntypes:\n  - name: A\n    schema: { tuple: Bool }\n", "unknown schema form"},
		{"package: p\ntypes:\n  - name: A\n    schema: { ref: Nope }\n", "unknown type"},
		{"package: p\nextra: 1\ntypes: []\n", "unknown key"},
	}
	for _, tc := range cases {
		_, err := Load([]byte(tc.src))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("source %q: expected error containing %q, got %v", tc.src, tc.want, err)
		}
	}
}
