package model

import "time"

// Config is the full tool configuration. Values are layered: defaults, then
// ~/.creatorlens/config.yaml, then CREATORLENS_* environment variables, then
// CLI flags.
type Config struct {
	HTTP         HTTPConfig        `yaml:"http"`
	Cache        CacheConfig       `yaml:"cache"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting"`
	LLM          LLMConfig         `yaml:"llm"`
	Verify       VerifyConfig      `yaml:"verify"`
	Output       OutputConfig      `yaml:"output"`
}

// HTTPConfig controls the payload fetcher.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
	// RespectRobots applies to HTML share-page fetches only; JSON API
	// endpoints are not subject to robots.txt.
	RespectRobots bool `yaml:"respect_robots"`
}

// CacheConfig controls raw-payload caching. Caching happens strictly outside
// the engine.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig controls per-host request pacing.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// LLMConfig controls the optional profile summarizer.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, ollama, "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // Environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens"`
}

// VerifyConfig controls optional accessibility checks of discovered contact
// links. Results attach to the report, never to the profile.
type VerifyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
	Workers int           `yaml:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
	// IncludeExtended attaches the loose extended diagnostic blocks to the
	// profile when any carry data.
	IncludeExtended bool `yaml:"include_extended"`
	// LogDiagnostics emits the per-domain utilization counts through the
	// structured logger after each extraction.
	LogDiagnostics bool `yaml:"log_diagnostics"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "creatorlens/0.1 (+https://github.com/creatorlens/creatorlens)",
			MaxBodyBytes:  4_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Verify: VerifyConfig{
			Enabled: false,
			Timeout: 10 * time.Second,
			Workers: 10,
		},
		Output: OutputConfig{
			IncludeFooter:  true,
			LogDiagnostics: true,
		},
	}
}
