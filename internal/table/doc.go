// Package table provides the YAML schema, parsing and validation of
// literal tables.
//
// A table describes exactly one matcher: the literal vocabulary, the Go
// signature of the generated function and the expressions embedding it into
// the surrounding parser.
//
// # Schema Overview
//
//	version: "1"
//	package: httpmethod
//	output: method_gen.go           # default: <snake_case(name)>_gen.go
//	case_sensitive: true            # default: true
//	matcher:
//	  name: parseMethod
//	  params: "r io.ByteReader"
//	  results: "Method, string, bool"
//	  doc: "parseMethod reads a request method terminated by a space."
//	embedding:
//	  read: "readByte(r)"           # (byte, bool)
//	  terminator: "' '"
//	  max_len: "maxMethodLen"
//	  valid: "isTokenByte({})"      # {} is the candidate byte
//	  unknown: "Extension, {}, true" # {} is the accumulated text
//	  found: "{}, \"\", true"       # {} is the literal value; default "{}"
//	  no_match: "0, \"\", false"
//	literals:
//	  - key: GET
//	    value: Get
//	  - key: [HEAD, head]           # several keys for one value
//	    value: Head
package table

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'branchgen.table'.
func tracer() tracing.Trace {
	return tracing.Select("branchgen.table")
}
