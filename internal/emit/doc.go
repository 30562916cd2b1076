// Package emit turns a trie into the statements of a byte-by-byte matcher.
//
// The emitted code is parameterized by an Embedding: the byte read
// expression, the terminator byte, the fallback length bound, the byte
// validity predicate and the outcome expressions. None of them are parsed;
// they are spliced into the generated source as they are.
//
// Statements are built as a jennifer (github.com/dave/jennifer) statement
// tree and rendered by a single printer, so the shape of the matcher can be
// inspected before it becomes text.
//
// For literals GET and GETX, terminator ' ', the emitted body reads:
//
//	var (
//		prefix string
//		next   byte
//	)
//	switch c, ok := read; {
//	case ok && c == 'G':
//		switch c, ok := read; {
//		case ok && c == 'E':
//			...
//		case ok && c == ' ':
//			return unknown("G")
//		case ok && valid(c):
//			prefix, next = "G", c
//		default:
//			return noMatch
//		}
//	case ok && valid(c):
//		prefix, next = "", c
//	default:
//		return noMatch
//	}
//	// No literal matched; accumulate the rest of the token.
//	buf := append([]byte(prefix), next)
//	...
package emit

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'branchgen.emit'.
func tracer() tracing.Trace {
	return tracing.Select("branchgen.emit")
}
