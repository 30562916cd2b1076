package analyze

import (
	"github.com/emirpasic/gods/sets/treeset"

	"branchgen/internal/common"
)

// ObjectKind represents the kind of a package-level object.
type ObjectKind int

const (
	ObjectUnknown ObjectKind = iota
	ObjectConst
	ObjectVar
	ObjectFunc
	ObjectType
)

// String returns a human-readable representation of the ObjectKind.
func (k ObjectKind) String() string {
	switch k {
	case ObjectConst:
		return "const"
	case ObjectVar:
		return "var"
	case ObjectFunc:
		return "func"
	case ObjectType:
		return "type"
	default:
		return common.UnknownStr
	}
}

// Scope holds the package-level declarations of one package.
type Scope struct {
	PkgPath string // e.g., "branchgen/examples/httpmethod"
	Name    string // e.g., "httpmethod"
	Objects map[string]ObjectKind
}

// NewScope creates an empty Scope.
func NewScope(pkgPath, name string) *Scope {
	return &Scope{
		PkgPath: pkgPath,
		Name:    name,
		Objects: make(map[string]ObjectKind),
	}
}

// Lookup returns the kind of the object declared as name.
func (s *Scope) Lookup(name string) (ObjectKind, bool) {
	k, ok := s.Objects[name]
	return k, ok
}

// Names returns the declared names in sorted order.
func (s *Scope) Names() []string {
	set := treeset.NewWithStringComparator()
	for name := range s.Objects {
		set.Add(name)
	}

	return toStrings(set)
}

// NamesOf returns the sorted names of objects of the given kinds.
func (s *Scope) NamesOf(kinds ...ObjectKind) []string {
	set := treeset.NewWithStringComparator()

	for name, k := range s.Objects {
		for _, want := range kinds {
			if k == want {
				set.Add(name)
				break
			}
		}
	}

	return toStrings(set)
}

func toStrings(set *treeset.Set) []string {
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}

	return out
}
