// Package analyze loads the package a matcher is generated into.
//
// It uses golang.org/x/tools/go/packages with go/types to collect the
// names declared at package scope, so literal values can be checked
// before the generated file is compiled.
//
// Key types:
//   - Scope: package path, name and the objects declared at package level
//   - ObjectKind: const, var, func or type
package analyze

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'branchgen.analyze'.
func tracer() tracing.Trace {
	return tracing.Select("branchgen.analyze")
}
