package emit

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder is the single substitution point of an embedding template.
const Placeholder = "{}"

// ErrNoPlaceholder is returned for a template lacking Placeholder.
var ErrNoPlaceholder = errors.New("template has no " + Placeholder + " placeholder")

// Embedding holds the expressions tying the generated matcher to the
// surrounding parser. Every string is Go source spliced in verbatim.
type Embedding struct {
	// Read is an expression of type (byte, bool) producing the next input
	// byte; false means no byte is available.
	Read string
	// Terminator is the byte marking the end of a token.
	Terminator string
	// MaxLen bounds the length of a token accumulated on the fallback path.
	MaxLen string
	// Valid returns a boolean expression telling whether the byte held in
	// the given variable may extend a token.
	Valid func(b string) string
	// Unknown returns the outcome for a token outside the vocabulary, given
	// a string expression holding its text.
	Unknown func(text string) string
	// Found returns the outcome for a recognized literal value. Nil returns
	// the value unchanged.
	Found func(value string) string
	// NoMatch is the outcome when no token can be recognized.
	NoMatch string
	// Reserved lists further source fragments, such as the parameter list,
	// whose identifiers the matcher's own variables must not shadow.
	Reserved []string
}

// Templates is the textual form of an Embedding, as found in table files.
type Templates struct {
	Read       string
	Terminator string
	MaxLen     string
	Valid      string
	Unknown    string
	Found      string
	NoMatch    string
}

// FromTemplates builds an Embedding whose callbacks substitute their
// argument for the first Placeholder of the corresponding template.
// An empty Found template means the value itself.
func FromTemplates(t Templates) (Embedding, error) {
	e := Embedding{
		Read:       t.Read,
		Terminator: t.Terminator,
		MaxLen:     t.MaxLen,
		NoMatch:    t.NoMatch,
	}

	var err error
	if e.Valid, err = substitution("valid", t.Valid); err != nil {
		return Embedding{}, err
	}

	if e.Unknown, err = substitution("unknown", t.Unknown); err != nil {
		return Embedding{}, err
	}

	if t.Found != "" {
		if e.Found, err = substitution("found", t.Found); err != nil {
			return Embedding{}, err
		}
	}

	return e, nil
}

func substitution(name, tmpl string) (func(string) string, error) {
	if !strings.Contains(tmpl, Placeholder) {
		return nil, fmt.Errorf("%s %q: %w", name, tmpl, ErrNoPlaceholder)
	}

	return func(arg string) string {
		return strings.Replace(tmpl, Placeholder, arg, 1)
	}, nil
}

// Validate checks that every expression of the embedding is present.
func (e Embedding) Validate() error {
	var missing []string

	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"read", e.Read == ""},
		{"terminator", e.Terminator == ""},
		{"max_len", e.MaxLen == ""},
		{"valid", e.Valid == nil},
		{"unknown", e.Unknown == nil},
		{"no_match", e.NoMatch == ""},
	} {
		if f.empty {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("embedding is missing %s", strings.Join(missing, ", "))
	}

	return nil
}

func (e Embedding) valid(b string) string {
	if e.Valid == nil {
		return ""
	}

	return e.Valid(b)
}

func (e Embedding) unknown(text string) string {
	if e.Unknown == nil {
		return ""
	}

	return e.Unknown(text)
}

func (e Embedding) found(value string) string {
	if e.Found == nil {
		return value
	}

	return e.Found(value)
}
