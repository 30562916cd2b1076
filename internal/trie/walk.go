package trie

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WalkFunc is called for every node and every one of its match bytes.
// prefix is the path of bytes from the root up to and including the
// matched byte.
type WalkFunc func(id NodeID, prefix string, depth int) error

// Walk visits nodes depth-first in emission order: for each match byte
// of a node, the node itself and then its subtree under that prefix.
func (t *Trie) Walk(fn WalkFunc) error {
	return t.walk(t.Roots(), "", 0, fn)
}

func (t *Trie) walk(ids []NodeID, prefix string, depth int, fn WalkFunc) error {
	for _, id := range ids {
		for _, m := range t.Nodes[id].Matches {
			p := prefix + string([]byte{m})
			if err := fn(id, p, depth); err != nil {
				return err
			}

			if err := t.walk(t.Nodes[id].Children, p, depth+1, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// PrefixPair names a literal that is a strict prefix of another one.
type PrefixPair struct {
	Prefix Literal
	Longer Literal
}

// PrefixLiterals lists literals ending on interior nodes, paired with every
// literal further down the same branch. Only the first alternative of each
// byte is followed, so a case-folded pair is reported once.
func (t *Trie) PrefixLiterals() []PrefixPair {
	var pairs []PrefixPair

	var collect func(id NodeID, above []int)
	collect = func(id NodeID, above []int) {
		n := &t.Nodes[id]
		if n.HasTerminal() {
			for _, p := range above {
				pairs = append(pairs, PrefixPair{Prefix: t.Literals[p], Longer: t.Literals[n.Terminal]})
			}

			above = append(above[:len(above):len(above)], n.Terminal)
		}

		for _, c := range n.Children {
			collect(c, above)
		}
	}

	for _, r := range t.Roots() {
		collect(r, nil)
	}

	return pairs
}

// Dump writes an indented view of the trie, one node per line.
func (t *Trie) Dump(w io.Writer) error {
	if root := &t.Nodes[RootID]; root.HasTerminal() {
		if _, err := fmt.Fprintf(w, "(root) => %s\n", t.Literals[root.Terminal].Value); err != nil {
			return err
		}
	}

	return t.dump(w, t.Roots(), 0)
}

func (t *Trie) dump(w io.Writer, ids []NodeID, depth int) error {
	for _, id := range ids {
		n := &t.Nodes[id]

		alts := make([]string, len(n.Matches))
		for i, m := range n.Matches {
			alts[i] = strconv.QuoteRuneToASCII(rune(m))
		}

		line := strings.Repeat("  ", depth) + strings.Join(alts, "|")
		if v, ok := t.Value(id); ok {
			line += " => " + v
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		if err := t.dump(w, n.Children, depth+1); err != nil {
			return err
		}
	}

	return nil
}
