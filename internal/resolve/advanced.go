package resolve

import (
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Advanced resolves the secondary provider-computed quality scores.
func Advanced(n payload.Node) model.AdvancedAnalyticsProfile {
	a := model.AdvancedAnalyticsProfile{}

	if f, ok := n.FirstFloat("advanced.growth_quality", "growth_quality_score", "advanced_analytics.growth_quality"); ok {
		a.GrowthQuality = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("advanced.engagement_authenticity", "engagement_authenticity", "advanced_analytics.engagement_authenticity"); ok {
		a.EngagementAuthenticity = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("advanced.audience_stability", "audience_stability", "advanced_analytics.audience_stability"); ok {
		a.AudienceStability = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("advanced.viral_potential", "viral_potential", "advanced_analytics.viral_potential"); ok {
		a.ViralPotential = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("advanced.comment_authenticity", "comment_authenticity", "advanced_analytics.comment_authenticity"); ok {
		a.CommentAuthenticity = ratioPtr(f)
	}

	return a
}
