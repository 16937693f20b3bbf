package model

import "time"

// Config is the full TruthLens configuration tree
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Oracle      OracleConfig      `yaml:"oracle" mapstructure:"oracle"`
	Knowledge   KnowledgeConfig   `yaml:"knowledge" mapstructure:"knowledge"`
	News        NewsConfig        `yaml:"news" mapstructure:"news"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the content fetcher
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// OracleConfig controls the generative oracle used for extraction and
// verification. An empty provider disables the oracle entirely.
type OracleConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // gemini, openai, anthropic, ollama, ""
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"` // From environment only, never from file
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// KnowledgeConfig controls the encyclopedia lookup client
type KnowledgeConfig struct {
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	RatePerSec  float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	SearchLimit int           `yaml:"search_limit" mapstructure:"search_limit"`
}

// NewsConfig controls the news search collaborator
type NewsConfig struct {
	APIKey  string `yaml:"-" mapstructure:"-"` // NEWSAPI_KEY; empty means simulated results
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// CacheConfig controls the fetch result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig bounds parallel work
type ConcurrencyConfig struct {
	VerifyWorkers int `yaml:"verify_workers" mapstructure:"verify_workers"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "TruthLens/0.1 (+https://github.com/truthlens/truthlens)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Oracle: OracleConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Knowledge: KnowledgeConfig{
			BaseURL:     "https://en.wikipedia.org/w/api.php",
			Timeout:     15 * time.Second,
			CacheTTL:    15 * time.Minute,
			RatePerSec:  2,
			SearchLimit: 3,
		},
		News: NewsConfig{
			BaseURL: "https://newsapi.org/v2",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			VerifyWorkers: 4,
		},
		Output: OutputConfig{},
	}
}
