// Package diagnostic provides structured errors, warnings and notes
// collected while a literal table is checked and turned into a matcher.
//
// Key capabilities:
//   - Table shape errors (missing matcher name, embedding, values)
//   - Duplicate keys after case folding
//   - Literal values unknown to the target package, with suggestions
//   - Notes on literals that are prefixes of other literals
package diagnostic
