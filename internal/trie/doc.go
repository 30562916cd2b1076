// Package trie folds a literal table into a prefix tree.
//
// The tree exists only while a matcher is generated: it is built once from
// the table, walked once by the emitter and then dropped.
//
// Nodes live in a single arena (Trie.Nodes) and refer to their children by
// NodeID. Node 0 is a synthetic root; its children are the roots handed to
// the emitter. Sibling order is first-insertion order.
package trie

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'branchgen.trie'.
func tracer() tracing.Trace {
	return tracing.Select("branchgen.trie")
}
