package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"bitenum-generator/internal/analyze"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// RemoveStale deletes the conditional files generated earlier for a type
// whose stem is base ("mode_bitenum") that are not part of files. Only files
// carrying the generated header are removed. It returns the removed names.
func RemoveStale(dir, base string, files []GeneratedFile) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, base+"_cond*.go"))
	if err != nil {
		return nil, err
	}

	var removed []string

	for _, p := range matches {
		name := filepath.Base(p)
		if slices.ContainsFunc(files, func(f GeneratedFile) bool { return f.Filename == name }) {
			continue
		}

		content, err := os.ReadFile(p)
		if err != nil {
			return removed, fmt.Errorf("reading %s: %w", name, err)
		}

		if !bytes.HasPrefix(content, []byte(analyze.GeneratedMarker)) {
			continue
		}

		if err := os.Remove(p); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}

		removed = append(removed, name)
	}

	return removed, nil
}

// writeDebugUnformatted writes unformatted code to a sidecar file in outDir.
// It is best-effort: callers ignore its error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep it a .go file so editors can highlight it, without colliding with
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
