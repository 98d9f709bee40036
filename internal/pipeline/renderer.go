package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Renderer writes document results as JSON for the downstream document
// store. Records are flat string maps, so the output is a plain JSON
// array of objects.
type Renderer struct {
	indent bool
}

// NewRenderer creates a renderer. indent controls pretty-printing.
func NewRenderer(indent bool) *Renderer {
	return &Renderer{indent: indent}
}

// WriteRecords writes only the winning record list, the shape the
// persistence layer ingests.
func (r *Renderer) WriteRecords(result *DocumentResult, w io.Writer) error {
	return r.encode(w, result.Records)
}

// WriteResult writes the full result including winner identity and the
// per-extractor score map.
func (r *Renderer) WriteResult(result *DocumentResult, w io.Writer) error {
	return r.encode(w, result)
}

// WriteFile renders the winning records to a file path, or to stdout
// when path is "-" or empty.
func (r *Renderer) WriteFile(result *DocumentResult, path string) error {
	if path == "" || path == "-" {
		return r.WriteRecords(result, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.WriteRecords(result, f)
}

func (r *Renderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
