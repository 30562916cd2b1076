package table

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"branchgen/internal/diagnostic"
	"branchgen/internal/emit"
	"branchgen/internal/trie"
	"branchgen/utils"
)

// Validate checks a table for everything that can be checked without
// loading the target package.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("table_is_nil", "table file is nil", "", "")
		return res
	}

	validateHeader(res, f)
	validateEmbedding(res, &f.Embedding)

	if len(f.Literals) == 0 {
		res.AddWarning("empty_table", "table has no literals; every token takes the fallback path", "", "literals")
	}

	if validateLiterals(res, f) {
		validateTrie(res, f)
	}

	validateTerminator(res, f)

	return res
}

func validateHeader(res *diagnostic.Diagnostics, f *File) {
	switch {
	case f.Package == "":
		res.AddError("missing_package", "package is required", "", "package")
	case !token.IsIdentifier(f.Package):
		res.AddError("invalid_package", fmt.Sprintf("package %q is not an identifier", f.Package), "", "package")
	}

	switch {
	case f.Matcher.Name == "":
		res.AddError("missing_matcher_name", "matcher name is required", "", "matcher.name")
	case !token.IsIdentifier(f.Matcher.Name):
		res.AddError("invalid_matcher_name",
			fmt.Sprintf("matcher name %q is not an identifier", f.Matcher.Name), "", "matcher.name")
	}

	if f.Matcher.Results == "" {
		res.AddError("missing_results", "matcher results are required", "", "matcher.results")
	}

	if f.Output != "" && !strings.HasSuffix(f.Output, ".go") {
		res.AddWarning("output_not_go", fmt.Sprintf("output %q does not end in .go", f.Output), "", "output")
	}
}

func validateEmbedding(res *diagnostic.Diagnostics, e *EmbeddingSpec) {
	required := []struct {
		field string
		value string
	}{
		{"read", e.Read},
		{"terminator", e.Terminator},
		{"max_len", e.MaxLen},
		{"valid", e.Valid},
		{"unknown", e.Unknown},
		{"no_match", e.NoMatch},
	}

	for _, r := range required {
		if r.value == "" {
			res.AddError("missing_embedding", r.field+" expression is required", "", "embedding."+r.field)
		}
	}

	templates := []struct {
		field string
		value string
	}{
		{"valid", e.Valid},
		{"unknown", e.Unknown},
		{"found", e.Found},
	}

	for _, tmpl := range templates {
		if tmpl.value == "" {
			continue
		}

		switch strings.Count(tmpl.value, emit.Placeholder) {
		case 0:
			res.AddError("missing_placeholder",
				fmt.Sprintf("%s template %q has no %s placeholder", tmpl.field, tmpl.value, emit.Placeholder),
				"", "embedding."+tmpl.field)
		case 1:
		default:
			res.AddWarning("multiple_placeholders",
				fmt.Sprintf("%s template %q: only the first %s is substituted", tmpl.field, tmpl.value, emit.Placeholder),
				"", "embedding."+tmpl.field)
		}
	}
}

// validateLiterals reports malformed entries and duplicate keys. It
// returns false when the trie cannot be built.
func validateLiterals(res *diagnostic.Diagnostics, f *File) bool {
	ok := true
	seen := map[string]string{}

	for i, l := range f.Literals {
		field := fmt.Sprintf("literals[%d]", i)

		if l.Value == "" {
			res.AddError("missing_value", "literal has no value", l.Key.First(), field+".value")
		}

		if l.Key.IsEmpty() {
			res.AddError("missing_key", "literal has no key", "", field+".key")
			continue
		}

		for _, k := range l.Key {
			if k == "" {
				res.AddWarning("empty_key", "empty key matches only a bare terminator", "", field+".key")
			}

			folded := foldKey(k, f.IsCaseSensitive())
			if first, dup := seen[folded]; dup {
				msg := "duplicate literal key"
				if first != k {
					msg = fmt.Sprintf("literal key collides with %q after case folding", first)
				}

				res.AddError("duplicate_key", msg, k, field+".key")
				ok = false

				continue
			}

			seen[folded] = k
		}
	}

	return ok
}

// validateTrie builds the trie and notes literals that are prefixes of
// others: they are only recognized when the terminator follows directly.
func validateTrie(res *diagnostic.Diagnostics, f *File) {
	t, err := f.BuildTrie()
	if err != nil {
		var dup *trie.DuplicateKeyError
		if errors.As(err, &dup) {
			res.AddError("duplicate_key", err.Error(), dup.Second.Key, "literals")
			return
		}

		res.AddError("trie_build_failed", err.Error(), "", "literals")

		return
	}

	for _, p := range t.PrefixLiterals() {
		res.AddInfo("prefix_literal",
			fmt.Sprintf("%q is a prefix of %q", p.Prefix.Key, p.Longer.Key), p.Prefix.Key, "")
	}
}

func foldKey(k string, caseSensitive bool) string {
	if caseSensitive {
		return k
	}

	b := []byte(k)
	for i := range b {
		b[i] = foldByte(b[i], false)
	}

	return string(b)
}

func foldByte(b byte, caseSensitive bool) byte {
	if caseSensitive {
		return b
	}

	return utils.ToUpperASCII(b)
}

// validateTerminator warns about keys containing the terminator byte. The
// key's own arm shadows the terminator there, so the bytes read so far are
// never reported as an unknown token.
func validateTerminator(res *diagnostic.Diagnostics, f *File) {
	term, ok := terminatorByte(f.Embedding.Terminator)
	if !ok {
		return
	}

	for i, l := range f.Literals {
		for _, k := range l.Key {
			if strings.IndexByte(foldKey(k, f.IsCaseSensitive()), foldByte(term, f.IsCaseSensitive())) < 0 {
				continue
			}

			res.AddWarning("terminator_in_key",
				fmt.Sprintf("key contains the terminator %s; the prefix before it is never reported as unknown",
					f.Embedding.Terminator),
				k, fmt.Sprintf("literals[%d].key", i))
		}
	}
}

// terminatorByte evaluates a terminator written as a rune literal such as
// ' ' or '\n'. Other expressions cannot be checked.
func terminatorByte(expr string) (byte, bool) {
	expr = strings.TrimSpace(expr)
	if len(expr) < 3 || expr[0] != '\'' {
		return 0, false
	}

	s, err := strconv.Unquote(expr)
	if err != nil || len(s) != 1 {
		return 0, false
	}

	return s[0], true
}
