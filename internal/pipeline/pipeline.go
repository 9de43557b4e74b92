// Package pipeline orchestrates one extraction end to end: fetch the raw
// payload, run the engine, attach diagnostics and optional enrichments, and
// render the result.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/creatorlens/creatorlens/internal/engine"
	"github.com/creatorlens/creatorlens/internal/llm"
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
	"github.com/creatorlens/creatorlens/internal/verify"
)

// Pipeline runs the complete extraction flow for one payload source.
type Pipeline struct {
	fetcher    *Fetcher
	engine     *engine.Engine
	summarizer *llm.Summarizer // Nil provider means disabled
	verifier   *verify.Verifier
	renderer   *Renderer
	logger     *zap.Logger
	config     *model.Config
}

// NewPipeline creates a pipeline from the tool configuration.
func NewPipeline(cfg *model.Config, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var engineOpts []engine.Option
	if cfg.Output.IncludeExtended {
		engineOpts = append(engineOpts, engine.WithExtendedDiagnostics())
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy))
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	var verifier *verify.Verifier
	if cfg.Verify.Enabled {
		verifier = verify.NewVerifier(cfg.Verify.Timeout, cfg.Verify.Workers,
			cfg.HTTP.UserAgent, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy)
	}

	return &Pipeline{
		fetcher:    NewFetcher(cfg),
		engine:     engine.New(engineOpts...),
		summarizer: llm.NewSummarizer(provider),
		verifier:   verifier,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		logger:     logger,
		config:     cfg,
	}, nil
}

// ExtractSource fetches one payload source and produces its report. The
// engine step itself cannot fail; errors come only from fetching or parsing
// the raw payload.
func (p *Pipeline) ExtractSource(ctx context.Context, source string) (*model.Report, error) {
	fetched, err := p.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch payload: %w", err)
	}

	node, err := payload.Parse(fetched.Body)
	if err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}

	profile := p.engine.Extract(node)
	utilization := engine.Utilization(profile)

	report := &model.Report{
		Source:      source,
		FetchedAt:   time.Now().UTC(),
		FetchMeta:   fetched.Meta,
		Profile:     profile,
		Utilization: utilization,
	}

	if p.config.Output.LogDiagnostics {
		p.logUtilization(source, profile, utilization)
	}

	if p.verifier != nil {
		report.LinkChecks = p.verifier.Verify(ctx, verify.Links(profile))
	}

	// Summary generation runs last so it can describe the finished report,
	// and its output never flows back into the profile.
	if p.summarizer.Enabled() {
		report.LLM = p.summarizer.Summarize(ctx, *report)
	}

	return report, nil
}

func (p *Pipeline) logUtilization(source string, profile *model.ExtractedProfile, u model.Utilization) {
	fields := []zap.Field{
		zap.String("source", source),
		zap.String("profile_id", profile.ProfileID),
		zap.Int("total_fields", u.Total()),
		zap.Int("trust", u.Trust),
		zap.Int("professional", u.Professional),
		zap.Int("performance", u.Performance),
		zap.Int("content", u.Content),
		zap.Int("audience", u.Audience),
		zap.Int("brand", u.Brand),
		zap.Int("pricing", u.Pricing),
		zap.Int("creator", u.Creator),
		zap.Int("advanced", u.Advanced),
		zap.Int("livestream", u.Livestream),
	}
	p.logger.Info("extraction complete", fields...)
}

// RenderReport writes the report to the requested outputs and prints the
// console summary.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
