package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchgen/internal/trie"
)

const methodsYAML = `
version: "1"
package: httpmethod
matcher:
  name: parseMethod
  params: "r io.ByteReader"
  results: "Method, string, bool"
  doc: parseMethod reads a request method terminated by a space.
embedding:
  read: readByte(r)
  terminator: "' '"
  max_len: maxMethodLen
  valid: isTokenByte({})
  unknown: "Extension, {}, true"
  found: '{}, "", true'
  no_match: '0, "", false'
literals:
  - key: GET
    value: Get
  - key: [HEAD, HEADER]
    value: Head
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(methodsYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "httpmethod", f.Package)
	assert.True(t, f.IsCaseSensitive())

	// Output defaults to the snake-cased matcher name.
	assert.Equal(t, "parse_method_gen.go", f.Output)

	assert.Equal(t, "parseMethod", f.Matcher.Name)
	assert.Equal(t, "r io.ByteReader", f.Matcher.Params)
	assert.Equal(t, "Method, string, bool", f.Matcher.Results)

	assert.Equal(t, "readByte(r)", f.Embedding.Read)
	assert.Equal(t, "' '", f.Embedding.Terminator)
	assert.Equal(t, `{}, "", true`, f.Embedding.Found)
	assert.Equal(t, `0, "", false`, f.Embedding.NoMatch)

	require.Len(t, f.Literals, 2)
	assert.Equal(t, StringOrArray{"GET"}, f.Literals[0].Key)
	assert.Equal(t, StringOrArray{"HEAD", "HEADER"}, f.Literals[1].Key)

	assert.Equal(t, []trie.Literal{
		{Key: "GET", Value: "Get"},
		{Key: "HEAD", Value: "Head"},
		{Key: "HEADER", Value: "Head"},
	}, f.TrieLiterals())
}

func TestParse_CaseInsensitive(t *testing.T) {
	f, err := Parse([]byte("case_sensitive: false\noutput: onoff_gen.go\n"))
	require.NoError(t, err)

	assert.False(t, f.IsCaseSensitive())
	assert.Equal(t, "onoff_gen.go", f.Output)
}

func TestParse_InvalidKey(t *testing.T) {
	_, err := Parse([]byte("literals:\n  - key: {a: b}\n    value: X\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("literals: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse table YAML")
}

func TestBuildEmbedding(t *testing.T) {
	f, err := Parse([]byte(methodsYAML))
	require.NoError(t, err)

	e, err := f.BuildEmbedding()
	require.NoError(t, err)

	assert.Equal(t, "isTokenByte(c)", e.Valid("c"))
	assert.Equal(t, `Extension, "GE", true`, e.Unknown(`"GE"`))
	assert.Equal(t, `Get, "", true`, e.Found("Get"))

	f.Embedding.Read = ""
	_, err = f.BuildEmbedding()
	assert.EqualError(t, err, "embedding is missing read")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(methodsYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "methods.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "key: GET\n")
	assert.Contains(t, string(data), "- HEADER\n")

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read table file")
}
