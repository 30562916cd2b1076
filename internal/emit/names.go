package emit

import (
	"go/scanner"
	"go/token"
	"strconv"
)

// namer hands out identifiers for the generated code that do not collide
// with identifiers used by the embedding expressions.
type namer struct {
	taken map[string]struct{}
}

// newNamer reserves every identifier appearing in exprs.
func newNamer(exprs ...string) *namer {
	n := &namer{taken: make(map[string]struct{})}
	for _, e := range exprs {
		for _, id := range identifiers(e) {
			n.taken[id] = struct{}{}
		}
	}

	return n
}

// fresh returns want if it is free, otherwise want followed by the
// smallest free positive number.
func (n *namer) fresh(want string) string {
	name := want
	for i := 1; ; i++ {
		if _, ok := n.taken[name]; !ok {
			n.taken[name] = struct{}{}
			return name
		}

		name = want + strconv.Itoa(i)
	}
}

// identifiers lists the identifier tokens of a Go expression. Malformed
// input is scanned as far as possible.
func identifiers(expr string) []string {
	var (
		s   scanner.Scanner
		ids []string
	)

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(expr))
	s.Init(file, []byte(expr), nil, 0)

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			return ids
		}

		if tok == token.IDENT {
			ids = append(ids, lit)
		}
	}
}

// identNames are the identifiers used inside the generated matcher.
type identNames struct {
	c, ok, prefix, next, buf string
}

// identNames allocates the matcher's variables around the embedding and
// any further expressions spliced into the matcher, such as found values.
func (e Embedding) identNames(extra ...string) identNames {
	probe := "_"
	exprs := append([]string{
		e.Read, e.Terminator, e.MaxLen, e.NoMatch,
		e.valid(probe), e.unknown(probe), e.found(probe),
	}, e.Reserved...)
	n := newNamer(append(exprs, extra...)...)

	return identNames{
		c:      n.fresh("c"),
		ok:     n.fresh("ok"),
		prefix: n.fresh("prefix"),
		next:   n.fresh("next"),
		buf:    n.fresh("buf"),
	}
}
