package engine

import (
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// extendedDiagnostics assembles the seven best-effort analytics blocks.
// These use the same fallback-chain probing as the resolvers but carry no
// shape guarantee; a block with no hits is omitted entirely.
func extendedDiagnostics(n payload.Node, p *model.ExtractedProfile) *model.ExtendedDiagnostics {
	return &model.ExtendedDiagnostics{
		Business:         businessBlock(n),
		ContentDepth:     contentDepthBlock(n, p),
		AudienceBehavior: audienceBehaviorBlock(n),
		Competitive:      competitiveBlock(n),
		Monetization:     monetizationBlock(n),
		Risk:             riskBlock(p),
		Predictive:       predictiveBlock(n),
	}
}

// block accumulates key/value pairs, staying nil until the first hit.
type block map[string]any

func (b *block) put(key string, v any) {
	if *b == nil {
		*b = block{}
	}
	(*b)[key] = v
}

func (b *block) putString(n payload.Node, key string, paths ...string) {
	if s, ok := n.FirstString(paths...); ok {
		b.put(key, s)
	}
}

func (b *block) putFloat(n payload.Node, key string, paths ...string) {
	if f, ok := n.FirstFloat(paths...); ok {
		b.put(key, f)
	}
}

func (b *block) putBool(n payload.Node, key string, paths ...string) {
	if v, ok := n.FirstBool(paths...); ok {
		b.put(key, v)
	}
}

func businessBlock(n payload.Node) map[string]any {
	var b block
	b.putBool(n, "is_business", "profile.is_business", "is_business_account")
	b.putString(n, "category", "profile.business_category", "business.category", "category")
	b.putString(n, "contact_method", "business.preferred_contact", "contact_method")
	b.putBool(n, "has_storefront", "business.has_storefront", "commerce.storefront")
	return b
}

func contentDepthBlock(n payload.Node, p *model.ExtractedProfile) map[string]any {
	var b block
	if total := len(p.Content.Top) + len(p.Content.Recent) + len(p.Content.Sponsored); total > 0 {
		b.put("normalized_items", total)
	}
	b.putFloat(n, "avg_caption_length", "content_analysis.avg_caption_length")
	b.putFloat(n, "video_share", "content_analysis.video_share", "content_mix.video")
	b.putString(n, "dominant_format", "content_analysis.dominant_format")
	return b
}

func audienceBehaviorBlock(n payload.Node) map[string]any {
	var b block
	b.putFloat(n, "comments_per_like", "audience_behavior.comments_per_like")
	b.putFloat(n, "story_completion", "audience_behavior.story_completion_rate")
	b.putString(n, "peak_activity", "audience_behavior.peak_activity_hours", "audience.peak_hours")
	return b
}

func competitiveBlock(n payload.Node) map[string]any {
	var b block
	b.putFloat(n, "category_percentile", "competitive.category_percentile", "benchmark.percentile")
	b.putString(n, "category", "competitive.category", "benchmark.category")
	b.putFloat(n, "share_of_voice", "competitive.share_of_voice")
	return b
}

func monetizationBlock(n payload.Node) map[string]any {
	var b block
	b.putFloat(n, "estimated_reach", "monetization.estimated_reach", "estimated_reach")
	b.putFloat(n, "cpm", "monetization.cpm")
	b.putFloat(n, "estimated_post_value", "monetization.post_value", "estimated_post_value")
	return b
}

// riskBlock restates the derived trust signals in loose form so diagnostic
// consumers get them without depending on the typed schema.
func riskBlock(p *model.ExtractedProfile) map[string]any {
	var b block
	if p.Trust.CredibilityScore > 0 {
		b.put("credibility_score", p.Trust.CredibilityScore)
	}
	if len(p.Trust.SuspiciousActivityIndicators) > 0 {
		b.put("indicators", append([]string{}, p.Trust.SuspiciousActivityIndicators...))
	}
	if p.Trust.RiskLevel != "" {
		b.put("risk_level", string(p.Trust.RiskLevel))
	}
	return b
}

func predictiveBlock(n payload.Node) map[string]any {
	var b block
	b.putFloat(n, "projected_growth_90d", "predictive.projected_growth_90d", "forecast.growth_90d")
	b.putFloat(n, "churn_risk", "predictive.churn_risk")
	b.putFloat(n, "breakout_probability", "predictive.breakout_probability")
	return b
}
