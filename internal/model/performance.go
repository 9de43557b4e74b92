package model

// PerformanceProfile covers engagement, sponsored performance, account
// reputation and growth trends.
type PerformanceProfile struct {
	Engagement EngagementMetrics `json:"engagement"`
	Sponsored  SponsoredMetrics  `json:"sponsored"`
	Reputation Reputation        `json:"reputation"`
	Trends     Trends            `json:"trends"`
}

// EngagementMetrics holds per-post engagement averages. Rate is a decimal
// in [0,1].
type EngagementMetrics struct {
	Rate        *float64 `json:"rate,omitempty"`
	AvgLikes    *float64 `json:"avg_likes,omitempty"`
	AvgComments *float64 `json:"avg_comments,omitempty"`
	AvgViews    *float64 `json:"avg_views,omitempty"`
	AvgShares   *float64 `json:"avg_shares,omitempty"`
	AvgSaves    *float64 `json:"avg_saves,omitempty"`
	Trend       Trend    `json:"trend,omitempty"`
}

// Trend is a coarse direction for a time-dependent metric.
type Trend string

const (
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// SponsoredMetrics compares disclosed paid content against the organic
// baseline. PerformanceRatio is sponsored engagement divided by organic
// engagement (1.0 means parity).
type SponsoredMetrics struct {
	PostCount        *int     `json:"post_count,omitempty"`
	AvgLikes         *float64 `json:"avg_likes,omitempty"`
	AvgComments      *float64 `json:"avg_comments,omitempty"`
	PerformanceRatio *float64 `json:"performance_ratio,omitempty"`
}

// Reputation holds raw account counts and derived ratios.
type Reputation struct {
	Followers     *int64   `json:"followers,omitempty"`
	Following     *int64   `json:"following,omitempty"`
	ContentCount  *int64   `json:"content_count,omitempty"`
	FollowerRatio *float64 `json:"follower_ratio,omitempty"` // followers / following
}

// Trends holds the reputation history time series and growth metrics.
type Trends struct {
	History        []ReputationPoint `json:"history"`
	FollowerGrowth *float64          `json:"follower_growth,omitempty"` // Decimal rate over the series
	MonthlyGrowth  *float64          `json:"monthly_growth,omitempty"`  // Decimal rate, most recent month
}

// ReputationPoint is one sample of the reputation history.
type ReputationPoint struct {
	Date      string `json:"date"`
	Followers *int64 `json:"followers,omitempty"`
	Following *int64 `json:"following,omitempty"`
}
