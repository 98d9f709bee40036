package extract

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// asciiOnly drops everything outside printable ASCII plus common
// whitespace. Invalid UTF-8 sequences decode to the replacement rune
// and are removed with the rest.
var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r > unicode.MaxASCII || r < ' '
}))

// Sanitize performs a best-effort, lossy cleanup of the raw document so
// structural parsing never sees invalid encoding bytes. Legacy chat
// exports routinely mix code pages inside one file; matching the
// historical behavior, non-ASCII content is discarded rather than
// transliterated.
func Sanitize(content []byte) []byte {
	out, _, err := transform.Bytes(asciiOnly, content)
	if err != nil {
		return content
	}
	return out
}
