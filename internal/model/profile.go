package model

// ExtractedProfile is the canonical, fully-shaped output of the normalization
// engine. Every container field is non-nil after extraction (empty, never
// absent) and every optional scalar is a pointer where nil means unknown.
// The record is constructed fresh per extraction and never mutated afterwards.
type ExtractedProfile struct {
	ProfileID string  `json:"profile_id"`         // Provider identifier, passed through unchanged
	Platform  *string `json:"platform,omitempty"` // instagram, tiktok, youtube, twitch, ...
	Username  *string `json:"username,omitempty"`

	Trust        TrustProfile             `json:"trust"`
	Professional ProfessionalProfile      `json:"professional"`
	Performance  PerformanceProfile       `json:"performance"`
	Content      ContentProfile           `json:"content"`
	Audience     AudienceProfile          `json:"audience"`
	Brand        BrandProfile             `json:"brand"`
	Pricing      PricingProfile           `json:"pricing"`
	Creator      CreatorProfile           `json:"creator"`
	Advanced     AdvancedAnalyticsProfile `json:"advanced"`
	Livestream   LivestreamProfile        `json:"livestream"`

	// Extended holds best-effort diagnostic blocks assembled by the
	// aggregator. They are not part of the guaranteed schema and may be
	// absent entirely.
	Extended *ExtendedDiagnostics `json:"extended,omitempty"`
}

// DemographicEntry is the canonical shape for one slice of a demographic
// breakdown. Value is always a decimal in [0,1]; Rank is the 1-based position
// in the source ordering.
type DemographicEntry struct {
	Code  string  `json:"code,omitempty"` // ISO-like code when the axis has one
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
}

// SocialProfile is a discovered presence on another platform.
type SocialProfile struct {
	Platform string `json:"platform"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url"`
	Verified bool   `json:"verified"`
}
