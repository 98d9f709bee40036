package model

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind classifies the declared format family of a document. It selects
// which extractors are raced over the content; it is a hint, not a
// guarantee, since legacy exports are frequently mislabeled.
type Kind string

const (
	KindHTML    Kind = "html"
	KindJSON    Kind = "json"
	KindCSV     Kind = "csv"
	KindXML     Kind = "xml"
	KindImage   Kind = "image"
	KindUnknown Kind = "unknown"
)

// Document is one raw export document plus the read-only context every
// extractor invocation receives.
type Document struct {
	Path        string // origin path, for reporting only
	Kind        Kind   // declared format family
	Content     []byte // full raw bytes
	ContextDate string // YYYY-MM-DD fallback date, e.g. from the filename
}

// KindOfPath maps a file extension to a document kind.
func KindOfPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return KindHTML
	case ".json":
		return KindJSON
	case ".csv", ".tsv":
		return KindCSV
	case ".xml":
		return KindXML
	case ".jpg", ".jpeg":
		return KindImage
	default:
		return KindUnknown
	}
}

// SniffKind guesses a kind from content when the extension is not
// conclusive. Deliberately lightweight: first meaningful byte only.
func SniffKind(content []byte) Kind {
	if len(content) >= 2 && content[0] == 0xff && content[1] == 0xd8 {
		return KindImage
	}
	trimmed := bytes.TrimLeft(content, " \t\r\n")
	if len(trimmed) == 0 {
		return KindUnknown
	}
	switch trimmed[0] {
	case '{', '[':
		return KindJSON
	case '<':
		if bytes.HasPrefix(trimmed, []byte("<?xml")) {
			return KindXML
		}
		return KindHTML
	}
	if bytes.ContainsAny(trimmed[:min(len(trimmed), 512)], ",\t") {
		return KindCSV
	}
	return KindUnknown
}
