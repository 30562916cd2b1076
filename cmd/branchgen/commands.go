package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"

	"branchgen/internal/analyze"
	"branchgen/internal/diagnostic"
	"branchgen/internal/gen"
	"branchgen/internal/table"
	"branchgen/internal/trie"
)

var errInvalidTable = errors.New("table has errors")

// genFlags are shared by gen and check.
type genFlags struct {
	out   string
	pkg   string
	trace string
}

func (g *genFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.out, "o", "", "output directory (default: the table's directory)")
	fs.StringVar(&g.pkg, "pkg", "", "package pattern to check literal values against")
	fs.StringVar(&g.trace, "trace", "Error", "trace level [Debug|Info|Error]")
}

// tableArg parses fs and returns its single table argument.
func tableArg(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one table file, got %d arguments", fs.Name(), fs.NArg())
	}

	return fs.Arg(0), nil
}

func genCmd(args []string, _ io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)

	var g genFlags
	g.register(fs)

	path, err := tableArg(fs, args)
	if err != nil {
		return err
	}

	setTraceLevel(g.trace)

	file, dir, err := generate(path, &g)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, dir); err != nil {
		return err
	}

	pterm.Success.Println(fmt.Sprintf("wrote %s", filepath.Join(dir, file.Filename)))

	return nil
}

func checkCmd(args []string, _ io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)

	var g genFlags
	g.register(fs)

	path, err := tableArg(fs, args)
	if err != nil {
		return err
	}

	setTraceLevel(g.trace)

	file, dir, err := generate(path, &g)
	if err != nil {
		return err
	}

	fresh, err := gen.Check(file, dir)
	if err != nil {
		return err
	}

	if !fresh {
		return fmt.Errorf("%s is stale; run branchgen gen %s", filepath.Join(dir, file.Filename), path)
	}

	pterm.Success.Println(fmt.Sprintf("%s is up to date", filepath.Join(dir, file.Filename)))

	return nil
}

func dumpCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	raw := fs.Bool("raw", false, "dump the trie's Go representation")
	paths := fs.Bool("paths", false, "list every spelling the matcher accepts")
	trace := fs.String("trace", "Error", "trace level [Debug|Info|Error]")

	path, err := tableArg(fs, args)
	if err != nil {
		return err
	}

	setTraceLevel(*trace)

	f, err := table.LoadFile(path)
	if err != nil {
		return err
	}

	t, err := f.BuildTrie()
	if err != nil {
		return err
	}

	switch {
	case *raw:
		spew.Fdump(out, t)
		return nil
	case *paths:
		return dumpPaths(out, t)
	default:
		return t.Dump(out)
	}
}

// dumpPaths prints one line per accepted spelling of every literal, in
// the order the matcher tests them.
func dumpPaths(out io.Writer, t *trie.Trie) error {
	if v, ok := t.Value(trie.RootID); ok {
		if _, err := fmt.Fprintf(out, "%q => %s\n", "", v); err != nil {
			return err
		}
	}

	return t.Walk(func(id trie.NodeID, prefix string, _ int) error {
		v, ok := t.Value(id)
		if !ok {
			return nil
		}

		_, err := fmt.Fprintf(out, "%q => %s\n", prefix, v)

		return err
	})
}

// generate loads, validates and generates the table at path. It returns
// the generated file and the directory it belongs in.
func generate(path string, g *genFlags) (*gen.GeneratedFile, string, error) {
	f, err := table.LoadFile(path)
	if err != nil {
		return nil, "", err
	}

	diags := table.Validate(f)

	if g.pkg != "" && !diags.HasErrors() {
		checked, err := checkValues(f, g.pkg)
		if err != nil {
			return nil, "", err
		}

		diags.Merge(checked)
	}

	printDiagnostics(diags)

	if diags.HasErrors() {
		return nil, "", fmt.Errorf("%s: %w", path, errInvalidTable)
	}

	dir := g.out
	if dir == "" {
		dir = filepath.Dir(path)
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = dir

	file, err := gen.NewGenerator(cfg).Generate(f, path)
	if err != nil {
		return nil, "", err
	}

	return file, dir, nil
}

func checkValues(f *table.File, pattern string) (*diagnostic.Diagnostics, error) {
	scope, err := analyze.NewAnalyzer().LoadScope(pattern)
	if err != nil {
		return nil, err
	}

	if scope.Name != f.Package {
		tracer().Infof("table package %q differs from loaded package %q", f.Package, scope.Name)
	}

	values := make([]string, 0, len(f.Literals))
	for _, l := range f.Literals {
		values = append(values, l.Value)
	}

	return analyze.CheckValues(scope, values), nil
}

func printDiagnostics(d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		switch diag.Severity {
		case diagnostic.SeverityError:
			pterm.Error.Println(diag.String())
		case diagnostic.SeverityWarning:
			pterm.Warning.Println(diag.String())
		default:
			pterm.Info.Println(diag.String())
		}
	}
}
