package model

// BrandProfile covers brand affinity and sponsorship history.
type BrandProfile struct {
	Affinities      []DemographicEntry `json:"affinities"` // Value in [0,1]
	MentionedBrands []string           `json:"mentioned_brands"`
	SponsoredBrands []string           `json:"sponsored_brands"`
	SponsoredCount  *int               `json:"sponsored_count,omitempty"`
}

// PricingProfile covers per-post-type pricing buckets.
type PricingProfile struct {
	// HasPricingData is true iff the source carried a pricing or pricing
	// explanations object at all, independent of field population.
	HasPricingData bool `json:"has_pricing_data"`

	Currency  *string           `json:"currency,omitempty"`
	PostTypes []PostTypePricing `json:"post_types"`
}

// PostTypePricing is the canonical pricing record for one post type.
type PostTypePricing struct {
	Type        string   `json:"type"` // post, story, reel, video, stream
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Average     *float64 `json:"average,omitempty"`
	Median      *float64 `json:"median,omitempty"`
	LastUpdated *string  `json:"last_updated,omitempty"`
	Explanation *string  `json:"explanation,omitempty"`
}

// CreatorProfile covers the creator's own demographics, as opposed to the
// audience's.
type CreatorProfile struct {
	Gender      *string  `json:"gender,omitempty"` // Canonical: Male, Female, Other
	AgeRange    *string  `json:"age_range,omitempty"`
	Language    *string  `json:"language,omitempty"` // Full language name
	Country     *string  `json:"country,omitempty"`  // Full country name
	City        *string  `json:"city,omitempty"`
	AccountType *string  `json:"account_type,omitempty"` // personal, creator, business
	Bio         *string  `json:"bio,omitempty"`
	Interests   []string `json:"interests"`
}

// AdvancedAnalyticsProfile covers secondary provider-computed quality scores,
// all decimals in [0,1].
type AdvancedAnalyticsProfile struct {
	GrowthQuality          *float64 `json:"growth_quality,omitempty"`
	EngagementAuthenticity *float64 `json:"engagement_authenticity,omitempty"`
	AudienceStability      *float64 `json:"audience_stability,omitempty"`
	ViralPotential         *float64 `json:"viral_potential,omitempty"`
	CommentAuthenticity    *float64 `json:"comment_authenticity,omitempty"`
}

// LivestreamProfile covers streaming-platform analytics. When the source has
// no livestream block at all, every field stays at its default; a platform
// without livestream and an empty livestream block are indistinguishable.
type LivestreamProfile struct {
	WatchHours           *float64           `json:"watch_hours,omitempty"`
	AvgConcurrentViewers *float64           `json:"avg_concurrent_viewers,omitempty"`
	PeakViewers          *int64             `json:"peak_viewers,omitempty"`
	StreamsPerWeek       *float64           `json:"streams_per_week,omitempty"`
	ChatMessagesPerHour  *float64           `json:"chat_messages_per_hour,omitempty"`
	SubscriberTiers      []DemographicEntry `json:"subscriber_tiers"`
	TopGames             []string           `json:"top_games"`
}
