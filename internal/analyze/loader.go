package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes

// Analyzer loads Go packages and records their package scopes.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the
	// current directory.
	Dir string
	// Tags are extra build tags, e.g. to see files excluded from the
	// generated build.
	Tags []string

	scopes map[string]*Scope
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scopes: make(map[string]*Scope)}
}

// LoadScopes loads the packages matching patterns (e.g.,
// "./examples/httpmethod", "branchgen/examples/onoff").
func (a *Analyzer) LoadScopes(patterns ...string) ([]*Scope, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	if len(a.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags", strings.Join(a.Tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Type errors are expected while a matcher is missing or stale; only
	// a package without any type information is fatal.
	var scopes []*Scope

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			tracer().Infof("package %s: %v", pkg.PkgPath, e)
		}

		if pkg.Types == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		s := a.processPackage(pkg)
		scopes = append(scopes, s)
	}

	if len(scopes) == 0 {
		return nil, errors.New("no packages matched")
	}

	return scopes, nil
}

// LoadScope loads exactly one package.
func (a *Analyzer) LoadScope(pattern string) (*Scope, error) {
	scopes, err := a.LoadScopes(pattern)
	if err != nil {
		return nil, err
	}

	if len(scopes) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(scopes))
	}

	return scopes[0], nil
}

// Scope returns a previously loaded scope by package path.
func (a *Analyzer) Scope(pkgPath string) *Scope {
	return a.scopes[pkgPath]
}

// processPackage collects the package-level objects of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *Scope {
	s := NewScope(pkg.PkgPath, pkg.Name)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		s.Objects[name] = objectKind(scope.Lookup(name))
	}

	tracer().Debugf("loaded %s: %d package-level names", pkg.PkgPath, len(s.Objects))
	a.scopes[pkg.PkgPath] = s

	return s
}

func objectKind(obj types.Object) ObjectKind {
	switch obj.(type) {
	case *types.Const:
		return ObjectConst
	case *types.Var:
		return ObjectVar
	case *types.Func:
		return ObjectFunc
	case *types.TypeName:
		return ObjectType
	default:
		return ObjectUnknown
	}
}
