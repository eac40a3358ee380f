package shapegen

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotAUnionType         = "not_a_union_type"
	CodeUnsupportedNestedType = "unsupported_nested_type"
	CodeDuplicateDeclaredName = "duplicate_declared_name"
	CodeDuplicateMemberName   = "duplicate_member_name"
	CodeInvalidWireValue      = "invalid_wire_value"
	// Defensive: a marshalling-table lookup missed a name that should have
	// been covered by construction. Signals a logic bug, not a data error.
	CodeInternalNameMismatch = "internal_name_mismatch"
)

// Issue represents a single compilation diagnostic.
type Issue struct {
	Path    string // Pointer into the batch (for example: /Employee/MakeEmployee/department).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, supported alternatives, etc.
	// Schema is the offending schema type, when there is one. Its textual
	// form is included in rendered diagnostics so users can fix their schema
	// definitions without reading compiler internals.
	Schema SchemaType
}

// Issues is a collection of compilation diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. not_a_union_type at /Bad: { x : Bool }
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Schema != nil {
			fmt.Fprintf(b, ": %s", it.Schema.String())
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
