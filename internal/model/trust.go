package model

// TrustProfile covers audience authenticity and account risk.
type TrustProfile struct {
	CredibilityScore int       `json:"credibility_score"` // 0-100
	RiskLevel        RiskLevel `json:"risk_level"`        // Derived, never read from the source

	FollowerTypes []FollowerType `json:"follower_types"`

	// Named follower-composition percentages, integer 0-100.
	RealFollowersPercentage       int `json:"real_followers_percentage"`
	SuspiciousFollowersPercentage int `json:"suspicious_followers_percentage"`
	QualityFollowersPercentage    int `json:"quality_followers_percentage"`
	MassFollowersPercentage       int `json:"mass_followers_percentage"`
	InfluencerFollowersPercentage int `json:"influencer_followers_percentage"`

	SignificantFollowersPercentage int `json:"significant_followers_percentage"`

	SuspiciousActivityIndicators []string `json:"suspicious_activity_indicators"`

	Verification Verification `json:"verification"`
}

// FollowerType is one follower-composition bucket reported by the provider.
type FollowerType struct {
	Name     string               `json:"name"`
	Value    float64              `json:"value"` // Decimal in [0,1]
	Category FollowerTypeCategory `json:"category"`
}

// FollowerTypeCategory classifies whether a follower bucket speaks for or
// against the profile.
type FollowerTypeCategory string

const (
	FollowerTypePositive FollowerTypeCategory = "positive"
	FollowerTypeNegative FollowerTypeCategory = "negative"
	FollowerTypeNeutral  FollowerTypeCategory = "neutral"
)

// RiskLevel is derived from credibility score and suspicious-follower share.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// DeriveRiskLevel applies the total, deterministic risk rule:
// high iff score < 50 or suspicious > 30; medium iff score < 70 or
// suspicious > 15; low otherwise.
func DeriveRiskLevel(credibilityScore, suspiciousPercentage int) RiskLevel {
	switch {
	case credibilityScore < 50 || suspiciousPercentage > 30:
		return RiskHigh
	case credibilityScore < 70 || suspiciousPercentage > 15:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Verification captures the platform verification state of the account.
type Verification struct {
	IsVerified bool    `json:"is_verified"`
	BadgeType  *string `json:"badge_type,omitempty"`
	VerifiedAt *string `json:"verified_at,omitempty"`
}
