package model

// ContentProfile covers the three content collections plus derived analysis
// and strategy records. Every item is normalized to ContentItem regardless of
// how the source spelled its fields.
type ContentProfile struct {
	Top       []ContentItem `json:"top"`
	Recent    []ContentItem `json:"recent"`
	Sponsored []ContentItem `json:"sponsored"`

	Analysis ContentAnalysis `json:"analysis"`
	Strategy ContentStrategy `json:"strategy"`
}

// ContentItem is one post/video in canonical shape.
type ContentItem struct {
	ID        string   `json:"id,omitempty"`
	URL       string   `json:"url,omitempty"`
	Type      string   `json:"type,omitempty"` // post, video, reel, story, stream
	Caption   string   `json:"caption,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	Likes     *int64   `json:"likes,omitempty"`
	Comments  *int64   `json:"comments,omitempty"`
	Views     *int64   `json:"views,omitempty"`
	Shares    *int64   `json:"shares,omitempty"`
	Saves     *int64   `json:"saves,omitempty"`
	Sponsor   string   `json:"sponsor,omitempty"` // Disclosed brand, sponsored items only
	EngRate   *float64 `json:"engagement_rate,omitempty"`
}

// ContentAnalysis holds derived posting behavior metrics.
type ContentAnalysis struct {
	PostingFrequency *float64        `json:"posting_frequency,omitempty"` // Posts per week
	PerformanceRank  PerformanceRank `json:"performance_rank,omitempty"`
}

// PerformanceRank coarsely ranks content performance against the platform
// baseline.
type PerformanceRank string

const (
	PerformanceLow     PerformanceRank = "low"
	PerformanceAverage PerformanceRank = "average"
	PerformanceHigh    PerformanceRank = "high"
)

// ContentStrategy holds the topical fingerprint of the account.
type ContentStrategy struct {
	Hashtags  []string `json:"hashtags"`
	Mentions  []string `json:"mentions"`
	Interests []string `json:"interests"`
	Themes    []string `json:"themes"`
}
