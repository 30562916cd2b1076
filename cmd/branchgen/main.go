// Package main provides the CLI entrypoint for branchgen.
//
// branchgen turns a YAML table of literal tokens into a Go function that
// recognizes them byte by byte:
//   - gen: validate the table and write the matcher file
//   - check: fail if the checked-in matcher file is stale
//   - dump: print the trie built from the table
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

const usage = `usage:
  branchgen gen   [-o dir] [-pkg pattern] [-trace level] table.yaml
  branchgen check [-o dir] [-pkg pattern] [-trace level] table.yaml
  branchgen dump  [-raw|-paths] [-trace level] table.yaml`

func main() {
	initDisplay()
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one command and returns the process exit status.
func run(args []string, out io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	var cmd func([]string, io.Writer) error

	switch args[0] {
	case "gen":
		cmd = genCmd
	case "check":
		cmd = checkCmd
	case "dump":
		cmd = dumpCmd
	case "-h", "-help", "help":
		fmt.Fprintln(out, usage)
		return 0
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q", args[0]))
		fmt.Fprintln(os.Stderr, usage)

		return 2
	}

	if err := cmd(args[1:], out); err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}

	return 0
}

// initDisplay sets up pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{
		"branchgen.trie",
		"branchgen.emit",
		"branchgen.table",
		"branchgen.analyze",
		"branchgen.gen",
		"branchgen.cli",
	} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// tracer traces with key 'branchgen.cli'.
func tracer() tracing.Trace {
	return tracing.Select("branchgen.cli")
}
