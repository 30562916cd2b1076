package emit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dave/jennifer/jen"

	"branchgen/internal/trie"
)

// Write renders the matcher body for t and writes it to w, each line
// indented by indent tabs.
func (em *Emitter) Write(w io.Writer, t *trie.Trie, indent int) error {
	lines, err := Render(em.Statements(t))
	if err != nil {
		return err
	}

	for _, l := range indentAll(lines, indent) {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return fmt.Errorf("writing matcher: %w", err)
		}
	}

	return nil
}

// Render prints statements as gofmt'd lines without indentation.
func Render(stmts []jen.Code) ([]string, error) {
	var buf bytes.Buffer
	if err := jen.Block(stmts...).Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering matcher: %w", err)
	}

	// Strip the enclosing braces and the one level of indentation gofmt
	// gives the block's contents.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("rendering matcher: unexpected output %q", buf.String())
	}

	lines = lines[1 : len(lines)-1]
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, "\t")
	}

	return lines, nil
}

func indentAll(lines []string, tabs int) []string {
	if len(lines) == 0 || tabs <= 0 {
		return lines
	}

	prefix := strings.Repeat("\t", tabs)
	out := make([]string, 0, len(lines))

	for _, l := range lines {
		if l == "" {
			out = append(out, l)
		} else {
			out = append(out, prefix+l)
		}
	}

	return out
}
