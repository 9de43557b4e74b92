// Package llm generates optional narrative summaries of extracted profiles.
// Summaries are produced after extraction and never feed back into the
// canonical profile.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
)

// Provider is one LLM backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a narrative summary of the extraction report.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks whether the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for summary generation.
type SummarizeRequest struct {
	// Report is the extraction report to summarize.
	Report model.Report

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model selects a provider-specific model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse is the generated summary.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", or "" (disabled).
	Provider string

	// Model name, provider-specific.
	Model string

	// APIKey for hosted providers.
	APIKey string

	// BaseURL for custom endpoints, such as a local Ollama server.
	BaseURL string

	// Timeout in seconds for API requests.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int

	// Proxy settings for hosted providers.
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns the built-in defaults, with summarization disabled.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// BuildPrompt renders the extraction report into a grounded summarization
// prompt. The LLM is told to restate only the facts listed, so the summary
// cannot introduce numbers the extraction did not produce.
func BuildPrompt(report model.Report) string {
	var b strings.Builder

	b.WriteString(`You are summarizing a normalized creator analytics profile.

RULES:
1. Use ONLY the facts listed below. Do not infer, estimate, or add numbers.
2. If a fact is missing from the list, do not mention it.
3. Describe the data, not the creator's worth. Avoid praise and judgement.
4. Write 3-5 plain sentences of Markdown, no headings.

Facts:
`)

	p := report.Profile
	if p == nil {
		b.WriteString("- (no profile data)\n")
		return b.String()
	}

	writeFact := func(format string, args ...any) {
		fmt.Fprintf(&b, "- "+format+"\n", args...)
	}

	if p.Platform != nil {
		writeFact("platform: %s", *p.Platform)
	}
	if p.Username != nil {
		writeFact("username: %s", *p.Username)
	}
	if p.Trust.CredibilityScore > 0 {
		writeFact("credibility score: %d/100", p.Trust.CredibilityScore)
	}
	if p.Trust.RiskLevel != "" {
		writeFact("risk level: %s", p.Trust.RiskLevel)
	}
	for _, ind := range p.Trust.SuspiciousActivityIndicators {
		writeFact("suspicious activity: %s", ind)
	}
	if p.Performance.Engagement.Rate != nil {
		writeFact("engagement rate: %.4f", *p.Performance.Engagement.Rate)
	}
	if p.Performance.Reputation.Followers != nil {
		writeFact("followers: %.0f", *p.Performance.Reputation.Followers)
	}
	if trend := p.Performance.Engagement.Trend; trend != "" {
		writeFact("engagement trend: %s", trend)
	}
	for i, c := range p.Audience.Countries {
		if i >= 3 {
			break
		}
		writeFact("audience country: %s (%.1f%%)", c.Name, c.Value*100)
	}
	if p.Pricing.HasPricingData {
		writeFact("pricing data: available, %d post types", len(p.Pricing.PostTypes))
	}
	if n := len(p.Brand.SponsoredBrands); n > 0 {
		writeFact("sponsored brands: %d", n)
	}

	total := report.Utilization.Total()
	writeFact("populated canonical fields: %d", total)

	b.WriteString("\nSummarize these facts now.")
	return b.String()
}
