package model

import "time"

// Config holds the complete dataprepper configuration
type Config struct {
	Parse       ParseConfig       `yaml:"parse" mapstructure:"parse"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// ParseConfig controls the extraction engine
type ParseConfig struct {
	// ExtractorTimeout bounds a single extractor invocation; a timeout
	// scores zero and never aborts the rest of the document
	ExtractorTimeout time.Duration `yaml:"extractor_timeout" mapstructure:"extractor_timeout"`

	// DefaultDate is the contextual date used when a filename carries none
	DefaultDate string `yaml:"default_date" mapstructure:"default_date"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`

	// RecordsPerSecond throttles emission toward downstream persistence
	// (0 = unlimited)
	RecordsPerSecond float64 `yaml:"records_per_second" mapstructure:"records_per_second"`
	Burst            int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls result caching for duplicate documents
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Disk    bool          `yaml:"disk" mapstructure:"disk"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Indent  bool `yaml:"indent" mapstructure:"indent"`
}

// LLMConfig holds optional LLM summary settings. The summary never
// affects arbitration or validation.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			ExtractorTimeout: 30 * time.Second,
			DefaultDate:      "1970-01-01",
		},
		Concurrency: ConcurrencyConfig{
			Workers:          4,
			RecordsPerSecond: 0,
			Burst:            100,
		},
		Cache: CacheConfig{
			Enabled: true,
			Disk:    false,
			Dir:     "",
			TTL:     1 * time.Hour,
		},
		Output: OutputConfig{
			Verbose: false,
			Indent:  true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
