package dialects

import "github.com/hexparrot/dataprepper/internal/extract"

// Default returns the registry of built-in extractors. The order is the
// arbiter's tie-break priority and is deliberately stable: specialized
// dialects come before generic fallbacks within each kind.
func Default() *extract.Registry {
	registry := extract.NewRegistry()

	// HTML: chat dialects, then activity exports
	registry.Register(NewAimLogs())
	registry.Register(NewAimSpans())
	registry.Register(NewMsn())
	registry.Register(NewFbChat())
	registry.Register(NewGVoice())
	registry.Register(NewYouTube())

	// JSON
	registry.Register(NewGChat())

	// Tabular: service-specific before generic
	registry.Register(NewNetflix())
	registry.Register(NewNetflixGames())
	registry.Register(NewTabular())

	// XML
	registry.Register(NewAnimeList())

	// Binary
	registry.Register(NewExif())

	return registry
}
