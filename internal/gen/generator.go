package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"branchgen/internal/emit"
	"branchgen/internal/table"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written. It is
	// also used to resolve imports and to place debug sidecar files.
	OutputDir string
	// GenerateComments enables the matcher's doc comment.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		GenerateComments: true,
	}
}

// Generator generates matcher files from literal tables.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "parse_method_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the matcher template.
type templateData struct {
	Source      string
	PackageName string
	Doc         []string
	Name        string
	Params      string
	Results     string
	Body        string
}

var matcherTemplate = template.Must(template.New("matcher").Parse(`// Code generated by branchgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.PackageName}}

{{range .Doc}}// {{.}}
{{end}}func {{.Name}}({{.Params}}) ({{.Results}}) {
{{.Body}}}
`))

// Generate generates the matcher file for f. source names the table file
// in the generated header; only its base name is used.
func (g *Generator) Generate(f *table.File, source string) (*GeneratedFile, error) {
	e, err := f.BuildEmbedding()
	if err != nil {
		return nil, fmt.Errorf("building embedding: %w", err)
	}

	t, err := f.BuildTrie()
	if err != nil {
		return nil, fmt.Errorf("building trie: %w", err)
	}

	var body bytes.Buffer
	if err := emit.New(e).Write(&body, t, 1); err != nil {
		return nil, err
	}

	data := g.buildTemplateData(f, source)
	data.Body = body.String()

	var buf bytes.Buffer
	if err := matcherTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := f.Output

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	resolved, err := imports.Process(filepath.Join(g.config.OutputDir, filename), formatted, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving imports: %w", err)
	}

	tracer().Debugf("generated %s: %d literals, %d trie nodes", filename, len(t.Literals), t.Len())

	return &GeneratedFile{
		Filename: filename,
		Content:  resolved,
	}, nil
}

func (g *Generator) buildTemplateData(f *table.File, source string) *templateData {
	data := &templateData{
		PackageName: f.Package,
		Name:        f.Matcher.Name,
		Params:      f.Matcher.Params,
		Results:     f.Matcher.Results,
	}

	if source != "" {
		data.Source = filepath.Base(source)
	}

	if g.config.GenerateComments && f.Matcher.Doc != "" {
		data.Doc = strings.Split(strings.TrimRight(f.Matcher.Doc, "\n"), "\n")
	}

	return data
}
