// Package match ranks identifiers by edit distance. It backs the
// "did you mean" suggestions for literal values that are not declared in
// the target package.
package match
