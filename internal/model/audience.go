package model

// AudienceProfile covers follower demographics, the mirrored significant-
// likers cohort, and audience behavior.
type AudienceProfile struct {
	Demographics

	Likers   Demographics     `json:"likers"`
	Behavior AudienceBehavior `json:"behavior"`
}

// Demographics groups every demographic axis. Each axis is an ordered list
// with Value in [0,1] and Rank as 1-based source position. The same shape is
// reused for followers and for significant likers.
type Demographics struct {
	Countries   []DemographicEntry `json:"countries"`
	Cities      []DemographicEntry `json:"cities"`
	GenderAge   []GenderAgeEntry   `json:"gender_age"`
	Ethnicities []DemographicEntry `json:"ethnicities"`
	Languages   []DemographicEntry `json:"languages"`
	Occupations []DemographicEntry `json:"occupations"`
	Income      []DemographicEntry `json:"income"`
	Education   []DemographicEntry `json:"education"`
}

// GenderAgeEntry is one cell of the gender-by-age breakdown.
type GenderAgeEntry struct {
	Gender   string  `json:"gender"` // Canonical: Male, Female, Other
	AgeRange string  `json:"age_range"`
	Value    float64 `json:"value"` // Decimal in [0,1]
	Rank     int     `json:"rank"`
}

// AudienceBehavior holds provider-computed audience quality signals, all
// decimals in [0,1].
type AudienceBehavior struct {
	NotableRatio         *float64 `json:"notable_ratio,omitempty"`
	CredibilityScore     *float64 `json:"credibility_score,omitempty"`
	Reachability         *float64 `json:"reachability,omitempty"`
	LikersCredibility    *float64 `json:"likers_credibility,omitempty"`
	SignificantLikersPct *float64 `json:"significant_likers_pct,omitempty"`
}
