package analyze

import (
	"fmt"
	"go/token"

	"github.com/emirpasic/gods/sets/treeset"

	"branchgen/internal/diagnostic"
	"branchgen/internal/match"
)

// maxSuggestions bounds the "did you mean" list of an unknown value.
const maxSuggestions = 3

// CheckValues reports literal values that name nothing in scope.
//
// Only plain identifiers are resolved. Qualified names and other
// expressions are left to the compiler and reported as infos.
func CheckValues(s *Scope, values []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	distinct := treeset.NewWithStringComparator()
	for _, v := range values {
		distinct.Add(v)
	}

	names := s.NamesOf(ObjectConst, ObjectVar, ObjectFunc)

	for _, it := range distinct.Values() {
		v := it.(string)

		if !token.IsIdentifier(v) {
			res.AddInfo("value_not_checked",
				fmt.Sprintf("value %q is not a plain identifier; left to the compiler", v), v, "value")

			continue
		}

		k, ok := s.Lookup(v)
		if !ok {
			d := res.AddError("unknown_value",
				fmt.Sprintf("%q is not declared in package %s", v, s.Name), v, "value")
			d.Suggestions = match.Suggest(v, names, maxSuggestions)

			continue
		}

		if k == ObjectType {
			res.AddError("value_is_type",
				fmt.Sprintf("%q names a type, not a value", v), v, "value")
		}
	}

	tracer().Debugf("checked %d distinct values against %s", distinct.Size(), s.PkgPath)

	return res
}
