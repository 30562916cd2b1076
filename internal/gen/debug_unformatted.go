package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that gofmt rejected next to the
// intended output, so the broken embedding expression can be located.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep it a .go file for syntax highlighting without colliding with the
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	p := filepath.Join(outDir, debugName)

	tracer().Errorf("generated code does not format; raw source in %s", p)

	return os.WriteFile(p, content, filePerm)
}
