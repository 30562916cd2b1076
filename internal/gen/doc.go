// Package gen writes matcher source files.
//
// A table is turned into a trie, the emitter renders the matcher body, and
// the body is placed into a text/template file skeleton. The result is
// formatted with go/format and its imports are resolved with
// golang.org/x/tools/imports, so the signature may refer to standard
// packages (e.g., "r io.ByteReader") without listing them.
package gen

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'branchgen.gen'.
func tracer() tracing.Trace {
	return tracing.Select("branchgen.gen")
}
