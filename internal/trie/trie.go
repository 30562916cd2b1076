package trie

import (
	"errors"
	"fmt"
	"slices"

	"branchgen/utils"
)

// ErrDuplicateKey is wrapped by every DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate literal key")

// NoTerminal marks a node no literal ends at.
const NoTerminal = -1

// NodeID indexes Trie.Nodes.
type NodeID int

// RootID is the synthetic root. It is never emitted itself.
const RootID NodeID = 0

// Literal is one entry of the input table.
type Literal struct {
	// Key is matched byte by byte.
	Key string
	// Value is the symbolic token returned when Key is recognized.
	Value string
}

// Node is a single trie position.
type Node struct {
	// Matches holds the one or two bytes advancing to this node.
	Matches []byte
	// Terminal indexes Trie.Literals, or is NoTerminal.
	Terminal int
	// Children are owned by this node only.
	Children []NodeID
}

// HasTerminal reports whether a literal ends at this node.
func (n *Node) HasTerminal() bool {
	return n.Terminal != NoTerminal
}

// Trie is an arena of nodes built from a literal table.
type Trie struct {
	Nodes         []Node
	Literals      []Literal
	CaseSensitive bool
}

// DuplicateKeyError reports two literals ending on the same node.
type DuplicateKeyError struct {
	First  Literal
	Second Literal
}

func (e *DuplicateKeyError) Error() string {
	if e.First.Key == e.Second.Key {
		return fmt.Sprintf("%s %q (values %s and %s)",
			ErrDuplicateKey, e.Second.Key, e.First.Value, e.Second.Value)
	}

	return fmt.Sprintf("%s %q collides with %q after case folding (values %s and %s)",
		ErrDuplicateKey, e.Second.Key, e.First.Key, e.First.Value, e.Second.Value)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// Build folds literals into a trie. Keys are compared byte-wise; when
// caseSensitive is false, ASCII letters match in either case.
//
// A zero-length key sets the terminal of the synthetic root.
func Build(literals []Literal, caseSensitive bool) (*Trie, error) {
	t := &Trie{
		Nodes:         []Node{{Terminal: NoTerminal}},
		Literals:      make([]Literal, 0, len(literals)),
		CaseSensitive: caseSensitive,
	}

	for _, lit := range literals {
		steps := make([][]byte, len(lit.Key))
		for i := 0; i < len(lit.Key); i++ {
			steps[i] = Alternatives(lit.Key[i], caseSensitive)
		}

		if err := t.insert(steps, lit); err != nil {
			return nil, err
		}
	}

	tracer().Debugf("built trie: %d literals, %d nodes", len(t.Literals), len(t.Nodes)-1)

	return t, nil
}

// Alternatives returns the bytes matching b at one position: b alone when
// case-sensitive, otherwise its ASCII upper and lower forms (upper first),
// collapsed to one byte when they coincide.
func Alternatives(b byte, caseSensitive bool) []byte {
	if caseSensitive {
		return []byte{b}
	}

	upper, lower := utils.ToUpperASCII(b), utils.ToLowerASCII(b)
	if upper == lower {
		return []byte{upper}
	}

	return []byte{upper, lower}
}

// insert walks steps from the root, creating nodes where no sibling
// accepts the step's first alternative.
func (t *Trie) insert(steps [][]byte, lit Literal) error {
	cur := RootID

	for _, alts := range steps {
		next, ok := t.child(cur, alts[0])
		if !ok {
			next = NodeID(len(t.Nodes))
			t.Nodes = append(t.Nodes, Node{
				Matches:  slices.Clone(alts),
				Terminal: NoTerminal,
			})
			t.Nodes[cur].Children = append(t.Nodes[cur].Children, next)
		}

		cur = next
	}

	node := &t.Nodes[cur]
	if node.HasTerminal() {
		return &DuplicateKeyError{First: t.Literals[node.Terminal], Second: lit}
	}

	node.Terminal = len(t.Literals)
	t.Literals = append(t.Literals, lit)

	return nil
}

// child finds the child of parent accepting b. Any byte of a child's
// alternative set counts, not only the first one.
func (t *Trie) child(parent NodeID, b byte) (NodeID, bool) {
	for _, id := range t.Nodes[parent].Children {
		if slices.Contains(t.Nodes[id].Matches, b) {
			return id, true
		}
	}

	return 0, false
}

// Node returns the node with the given id.
func (t *Trie) Node(id NodeID) *Node {
	return &t.Nodes[id]
}

// Roots returns the children of the synthetic root.
func (t *Trie) Roots() []NodeID {
	return t.Nodes[RootID].Children
}

// Value returns the value of the literal ending at id.
func (t *Trie) Value(id NodeID) (string, bool) {
	n := &t.Nodes[id]
	if !n.HasTerminal() {
		return "", false
	}

	return t.Literals[n.Terminal].Value, true
}

// Len returns the number of nodes, not counting the synthetic root.
func (t *Trie) Len() int {
	return len(t.Nodes) - 1
}
