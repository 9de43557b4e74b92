package resolve

import (
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/normalize"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Fixed diagnostic strings, appended in a stable order so reports stay
// comparable across runs.
const (
	indicatorSuspiciousRatio = "suspicious follower ratio above 15%"
	indicatorMassFollowers   = "mass-follower share above 20%"
	indicatorLowCredibility  = "audience credibility score below 50"
)

// Trust resolves the trust/authenticity domain.
func Trust(n payload.Node) model.TrustProfile {
	t := model.TrustProfile{
		FollowerTypes:                []model.FollowerType{},
		SuspiciousActivityIndicators: []string{},
	}

	if raw, ok := n.FirstFloat(
		"audience.credibility_score",
		"audience.audience_credibility",
		"credibility_score",
		"trust.credibility_score",
	); ok {
		t.CredibilityScore = normalize.Percent100(raw)
	}

	if raw, ok := n.FirstFloat(
		"audience.significant_followers_percentage",
		"significant_followers_percentage",
		"audience.notable_followers_percentage",
	); ok {
		t.SignificantFollowersPercentage = normalize.Percent100(raw)
	}

	t.FollowerTypes = followerTypes(n)

	// Named composition percentages come from the follower-type buckets
	// first, with flat fields as fallback for older payloads.
	t.RealFollowersPercentage = bucketPercent(t.FollowerTypes, n,
		[]string{"real", "genuine", "authentic"},
		"audience.real_followers_percentage", "real_followers_percentage")
	t.SuspiciousFollowersPercentage = bucketPercent(t.FollowerTypes, n,
		[]string{"suspicious", "fake", "bot"},
		"audience.suspicious_followers_percentage", "suspicious_followers_percentage", "fake_followers_percentage")
	t.QualityFollowersPercentage = bucketPercent(t.FollowerTypes, n,
		[]string{"quality"},
		"audience.quality_followers_percentage", "quality_followers_percentage")
	t.MassFollowersPercentage = bucketPercent(t.FollowerTypes, n,
		[]string{"mass"},
		"audience.mass_followers_percentage", "mass_followers_percentage")
	t.InfluencerFollowersPercentage = bucketPercent(t.FollowerTypes, n,
		[]string{"influencer"},
		"audience.influencer_followers_percentage", "influencer_followers_percentage")

	t.RiskLevel = model.DeriveRiskLevel(t.CredibilityScore, t.SuspiciousFollowersPercentage)

	// Indicators are independent and non-exclusive; order is fixed:
	// suspicious ratio, mass followers, low credibility.
	if t.SuspiciousFollowersPercentage > 15 {
		t.SuspiciousActivityIndicators = append(t.SuspiciousActivityIndicators, indicatorSuspiciousRatio)
	}
	if t.MassFollowersPercentage > 20 {
		t.SuspiciousActivityIndicators = append(t.SuspiciousActivityIndicators, indicatorMassFollowers)
	}
	if t.CredibilityScore < 50 {
		t.SuspiciousActivityIndicators = append(t.SuspiciousActivityIndicators, indicatorLowCredibility)
	}

	t.Verification = verification(n)

	return t
}

// followerTypes reads the follower-composition buckets from whichever key
// the payload version used.
func followerTypes(n payload.Node) []model.FollowerType {
	out := []model.FollowerType{}

	raw := n.FirstSlice(
		"audience.follower_types",
		"audience.followers_types",
		"follower_types",
		"audience_types",
	)
	for _, v := range raw {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		name := itemString(item, "name", "type", "label")
		if name == "" {
			continue
		}
		value, ok := itemFloat(item, "value", "percentage", "weight")
		if !ok {
			continue
		}
		out = append(out, model.FollowerType{
			Name:     name,
			Value:    normalize.Percentage(value),
			Category: normalize.FollowerType(name),
		})
	}
	return out
}

// bucketPercent matches a follower-type bucket by name substring and returns
// its value as an integer percentage, falling back to flat payload fields.
func bucketPercent(types []model.FollowerType, n payload.Node, substrings []string, fallbacks ...string) int {
	for _, ft := range types {
		lower := strings.ToLower(ft.Name)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return normalize.Percent100(ft.Value)
			}
		}
	}
	if raw, ok := n.FirstFloat(fallbacks...); ok {
		return normalize.Percent100(raw)
	}
	return 0
}

func verification(n payload.Node) model.Verification {
	v := model.Verification{}
	if b, ok := n.FirstBool("profile.is_verified", "is_verified", "verified", "verification.verified"); ok {
		v.IsVerified = b
	}
	if s, ok := n.FirstString("verification.badge", "profile.badge_type", "badge_type"); ok {
		v.BadgeType = strPtr(s)
	}
	if s, ok := n.FirstString("verification.verified_at", "profile.verified_at", "verified_at"); ok {
		v.VerifiedAt = strPtr(s)
	}
	return v
}
