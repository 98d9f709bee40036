package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hexparrot/dataprepper/internal/model"
)

var filenameDateRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// ReadDocument loads one raw document from disk and attaches the
// read-only context every extractor invocation will see: the declared
// kind (extension first, content sniff when the extension says
// nothing) and the contextual date. A read failure is fatal to this
// document only.
func ReadDocument(path, defaultDate string) (model.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read document: %w", err)
	}

	kind := model.KindOfPath(path)
	if kind == model.KindUnknown {
		kind = model.SniffKind(content)
	}

	return model.Document{
		Path:        path,
		Kind:        kind,
		Content:     content,
		ContextDate: ContextDateFromFilename(path, defaultDate),
	}, nil
}

// ContextDateFromFilename extracts a YYYY-MM-DD date from the file
// name, e.g. "2005-08-13 [Saturday].htm" -> "2005-08-13". Falls back to
// defaultDate when the name carries none.
func ContextDateFromFilename(path, defaultDate string) string {
	if m := filenameDateRe.FindString(filepath.Base(path)); m != "" {
		return m
	}
	return defaultDate
}
