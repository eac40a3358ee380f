// Package shapegen compiles batches of resolved schema types into host type
// declarations plus the marshalling configuration an external codec needs to
// translate between schema-level names and generated identifiers.
//
// - A batch of TypeRequest values yields one Declaration and one
//   MarshallingConfig per request (Compile).
// - Nested records and unions have no identity of their own; they become
//   references only when structurally equivalent to another request in the
//   same batch (Equivalent).
// - A stable diagnostic model via Issues (path, code, message).
//
// Design policy:
// - Keep only public APIs in the root package; put source rendering and
//   manifest loading under internal/.
// - Place schema builders under dsl/, the runtime codec under codec/, and
//   the CLI under cmd/shapegen.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  reqs := []shapegen.TypeRequest{
//      shapegen.UnionRequest("Department", department),
//      shapegen.ProductRequest("Employee", "MakeEmployee", employee),
//  }
//  batch, err := shapegen.Compile(reqs, shapegen.DefaultOptions())
package shapegen
