package llm

import (
	"context"
	"fmt"

	"github.com/creatorlens/creatorlens/internal/model"
)

// Summarizer attaches narrative summaries to extraction reports.
type Summarizer struct {
	provider Provider
}

// NewSummarizer creates a summarizer. A nil provider produces a disabled
// summarizer whose Summarize is a no-op.
func NewSummarizer(provider Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Enabled reports whether a provider is configured.
func (s *Summarizer) Enabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates a summary for the report. The returned value describes
// the attempt even on failure, so a broken provider degrades to a warning
// instead of failing the extraction.
func (s *Summarizer) Summarize(ctx context.Context, report model.Report) *model.LLMSummary {
	if !s.Enabled() {
		return nil
	}

	summary := &model.LLMSummary{
		Enabled:  true,
		Provider: s.provider.Name(),
	}

	if !s.provider.IsAvailable(ctx) {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("%s provider unavailable, summary skipped", s.provider.Name()))
		return summary
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Report: report})
	if err != nil {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("summarization failed: %v", err))
		return summary
	}

	summary.Model = resp.Model
	summary.SummaryMD = resp.Summary
	return summary
}
