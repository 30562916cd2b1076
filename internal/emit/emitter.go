package emit

import (
	"fmt"
	"go/ast"
	"go/parser"
	"strconv"

	"github.com/dave/jennifer/jen"

	"branchgen/internal/trie"
	"branchgen/utils"
)

const fallbackComment = "No literal matched; accumulate the rest of the token."

// Emitter produces matcher statements for one embedding.
type Emitter struct {
	embedding Embedding
	names     identNames
}

// New creates an Emitter. The embedding is not validated here; see
// Embedding.Validate.
func New(e Embedding) *Emitter {
	return &Emitter{
		embedding: e,
		names:     e.identNames(),
	}
}

// Statements returns the body of the matcher for t.
//
// The trie is walked once: every match byte of every node becomes one case
// arm with a nested switch over the next byte. Input leaving the trie
// through a valid byte falls out of the nested switches into a single
// accumulation loop shared by all branches.
func (em *Emitter) Statements(t *trie.Trie) []jen.Code {
	// Literal values are returned from inside the matcher's scope.
	found := make([]string, 0, len(t.Literals))
	for _, lit := range t.Literals {
		found = append(found, em.embedding.found(lit.Value))
	}

	em = &Emitter{
		embedding: em.embedding,
		names:     em.embedding.identNames(found...),
	}
	n := em.names

	stmts := []jen.Code{
		jen.Var().Defs(
			jen.Id(n.prefix).String(),
			jen.Id(n.next).Byte(),
		),
		em.rootSwitch(t),
	}

	stmts = append(stmts, em.fallback()...)

	tracer().Debugf("emitted matcher over %d trie nodes", t.Len())

	return stmts
}

func (em *Emitter) rootSwitch(t *trie.Trie) jen.Code {
	var arms []jen.Code
	for _, id := range t.Roots() {
		arms = append(arms, em.branch(t, id, "")...)
	}

	if v, ok := t.Value(trie.RootID); ok {
		arms = append(arms, em.terminatorArm(em.embedding.found(v)))
	}

	arms = append(arms, em.divergeArm(""), em.defaultArm())

	return em.readSwitch(arms)
}

// branch emits one arm per match byte of node id. prefix holds the bytes
// matched above the node.
func (em *Emitter) branch(t *trie.Trie, id trie.NodeID, prefix string) []jen.Code {
	node := t.Node(id)
	arms := make([]jen.Code, 0, len(node.Matches))

	for _, m := range node.Matches {
		matched := prefix + string([]byte{m})

		var inner []jen.Code
		for _, child := range node.Children {
			inner = append(inner, em.branch(t, child, matched)...)
		}

		if v, ok := t.Value(id); ok {
			inner = append(inner, em.terminatorArm(em.embedding.found(v)))
		} else {
			inner = append(inner, em.terminatorArm(em.embedding.unknown(strconv.Quote(matched))))
		}

		inner = append(inner, em.divergeArm(matched), em.defaultArm())

		arms = append(arms, jen.Case(em.isByte(byteLit(m))).Block(em.readSwitch(inner)))
	}

	return arms
}

// readSwitch reads one byte and dispatches over arms.
func (em *Emitter) readSwitch(arms []jen.Code) jen.Code {
	n := em.names

	return jen.Switch(
		jen.List(jen.Id(n.c), jen.Id(n.ok)).Op(":=").Id(em.embedding.Read),
		jen.Empty(),
	).Block(arms...)
}

func (em *Emitter) terminatorArm(outcome string) jen.Code {
	return jen.Case(em.isByte(jen.Id(group(em.embedding.Terminator)))).Block(
		jen.Return(jen.Id(outcome)),
	)
}

// divergeArm leaves the trie: the matched prefix and the current byte seed
// the accumulation loop.
func (em *Emitter) divergeArm(matched string) jen.Code {
	n := em.names

	return jen.Case(em.isValid()).Block(
		jen.List(jen.Id(n.prefix), jen.Id(n.next)).Op("=").List(jen.Lit(matched), jen.Id(n.c)),
	)
}

func (em *Emitter) defaultArm() jen.Code {
	return jen.Default().Block(jen.Return(jen.Id(em.embedding.NoMatch)))
}

func (em *Emitter) fallback() []jen.Code {
	n := em.names
	e := em.embedding
	maxLen := group(e.MaxLen)

	loop := jen.For().Block(em.readSwitch([]jen.Code{
		em.terminatorArm(e.unknown("string(" + n.buf + ")")),
		jen.Case(em.isValid()).Block(
			jen.If(jen.Len(jen.Id(n.buf)).Op(">=").Id(maxLen)).Block(
				jen.Return(jen.Id(e.NoMatch)),
			),
			jen.Id(n.buf).Op("=").Append(jen.Id(n.buf), jen.Id(n.c)),
		),
		em.defaultArm(),
	}))

	return []jen.Code{
		jen.Comment(fallbackComment),
		jen.Id(n.buf).Op(":=").Append(jen.Index().Byte().Call(jen.Id(n.prefix)), jen.Id(n.next)),
		jen.If(jen.Len(jen.Id(n.buf)).Op(">").Id(maxLen)).Block(
			jen.Return(jen.Id(e.NoMatch)),
		),
		loop,
	}
}

// isByte is `ok && c == b`.
func (em *Emitter) isByte(b jen.Code) *jen.Statement {
	return jen.Id(em.names.ok).Op("&&").Id(em.names.c).Op("==").Add(b)
}

// isValid is `ok && <valid(c)>`.
func (em *Emitter) isValid() *jen.Statement {
	return jen.Id(em.names.ok).Op("&&").Id(group(em.embedding.valid(em.names.c)))
}

// byteLit renders b as a rune literal when printable, in hex otherwise.
func byteLit(b byte) jen.Code {
	if utils.IsPrintableASCII(b) {
		return jen.LitRune(rune(b))
	}

	return jen.Id(fmt.Sprintf("0x%02x", b))
}

// group parenthesizes binary expressions so expr keeps its meaning next to
// && and comparison operators.
func group(expr string) string {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return "(" + expr + ")"
	}

	if _, ok := x.(*ast.BinaryExpr); ok {
		return "(" + expr + ")"
	}

	return expr
}
