package table

import (
	"branchgen/internal/emit"
	"branchgen/internal/trie"
)

// File is the root of a literal table.
type File struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the package clause of the generated file.
	Package string `yaml:"package"`

	// Output is the name of the generated file.
	Output string `yaml:"output,omitempty"`

	// CaseSensitive selects exact byte matching. When false, ASCII letters
	// match in either case.
	CaseSensitive *bool `yaml:"case_sensitive,omitempty"`

	// Matcher describes the generated function.
	Matcher Matcher `yaml:"matcher"`

	// Embedding holds the expressions tying the matcher to its parser.
	Embedding EmbeddingSpec `yaml:"embedding"`

	// Literals is the vocabulary, in table order.
	Literals []Literal `yaml:"literals"`
}

// Matcher describes the signature of the generated function.
type Matcher struct {
	Name    string `yaml:"name"`
	Params  string `yaml:"params,omitempty"`
	Results string `yaml:"results"`
	Doc     string `yaml:"doc,omitempty"`
}

// EmbeddingSpec is the textual form of emit.Embedding.
type EmbeddingSpec struct {
	Read       string `yaml:"read"`
	Terminator string `yaml:"terminator"`
	MaxLen     string `yaml:"max_len"`
	Valid      string `yaml:"valid"`
	Unknown    string `yaml:"unknown"`
	Found      string `yaml:"found,omitempty"`
	NoMatch    string `yaml:"no_match"`
}

// Literal maps one or more keys to a value.
type Literal struct {
	Key   StringOrArray `yaml:"key"`
	Value string        `yaml:"value"`
}

// StringOrArray is a string slice that unmarshals from a single string or a list.
type StringOrArray []string

// IsCaseSensitive reports the effective case sensitivity.
func (f *File) IsCaseSensitive() bool {
	return f.CaseSensitive == nil || *f.CaseSensitive
}

// TrieLiterals flattens the table into trie literals, one per key, in
// table order.
func (f *File) TrieLiterals() []trie.Literal {
	var out []trie.Literal

	for _, l := range f.Literals {
		for _, k := range l.Key {
			out = append(out, trie.Literal{Key: k, Value: l.Value})
		}
	}

	return out
}

// Templates returns the embedding in the form emit.FromTemplates expects.
func (e EmbeddingSpec) Templates() emit.Templates {
	return emit.Templates{
		Read:       e.Read,
		Terminator: e.Terminator,
		MaxLen:     e.MaxLen,
		Valid:      e.Valid,
		Unknown:    e.Unknown,
		Found:      e.Found,
		NoMatch:    e.NoMatch,
	}
}

// BuildEmbedding converts the embedding templates into an emit.Embedding.
// The matcher's parameters and results are reserved against shadowing.
func (f *File) BuildEmbedding() (emit.Embedding, error) {
	e, err := emit.FromTemplates(f.Embedding.Templates())
	if err != nil {
		return emit.Embedding{}, err
	}

	if err := e.Validate(); err != nil {
		return emit.Embedding{}, err
	}

	e.Reserved = []string{f.Matcher.Params, f.Matcher.Results}

	return e, nil
}

// BuildTrie builds the trie of the table's literals.
func (f *File) BuildTrie() (*trie.Trie, error) {
	return trie.Build(f.TrieLiterals(), f.IsCaseSensitive())
}
