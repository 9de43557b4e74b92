package resolve

import (
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/normalize"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Content resolves the three content collections plus the analysis and
// strategy records.
func Content(n payload.Node) model.ContentProfile {
	c := model.ContentProfile{
		Top:       contentItems(n.FirstSlice("top_posts", "top_contents", "content.top")),
		Recent:    contentItems(n.FirstSlice("recent_posts", "recent_contents", "content.recent")),
		Sponsored: contentItems(n.FirstSlice("sponsored_posts", "commercial_posts", "content.sponsored")),
	}

	if f, ok := n.FirstFloat("content_analysis.posting_frequency", "posting_frequency", "posts_per_week"); ok {
		c.Analysis.PostingFrequency = floatPtr(f)
	}
	if s, ok := n.FirstString("content_analysis.performance_rank", "performance_rank", "content_performance"); ok {
		c.Analysis.PerformanceRank = performanceRank(s)
	}

	c.Strategy = model.ContentStrategy{
		Hashtags:  stringList(n, []string{"name", "tag"}, "hashtags", "top_hashtags", "strategy.hashtags"),
		Mentions:  stringList(n, []string{"name", "username"}, "mentions", "top_mentions", "strategy.mentions"),
		Interests: stringList(n, []string{"name"}, "interests", "profile.interests", "strategy.interests"),
		Themes:    stringList(n, []string{"name", "theme"}, "themes", "content_themes", "topics"),
	}

	return c
}

// contentItems normalizes one content collection. Engagement counts prefer
// the nested engagement.*_count object; flat likes/comments fields are the
// fallback for older payload versions.
func contentItems(raw []any) []model.ContentItem {
	out := []model.ContentItem{}
	for _, v := range raw {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		ci := model.ContentItem{
			ID:        itemString(item, "id", "post_id", "media_id"),
			URL:       itemString(item, "url", "link", "permalink"),
			Type:      strings.ToLower(itemString(item, "type", "content_type", "media_type")),
			Caption:   itemString(item, "caption", "text", "title", "description"),
			Thumbnail: itemString(item, "thumbnail", "thumbnail_url", "image_url", "display_url"),
			CreatedAt: itemString(item, "created_at", "timestamp", "date", "taken_at"),
			Sponsor:   itemString(item, "sponsor", "brand", "sponsor_name"),
		}

		ci.Likes = engagementCount(item, "like_count", "likes_count", "likes")
		ci.Comments = engagementCount(item, "comment_count", "comments_count", "comments")
		ci.Views = engagementCount(item, "view_count", "views_count", "views", "plays")
		ci.Shares = engagementCount(item, "share_count", "shares_count", "shares")
		ci.Saves = engagementCount(item, "save_count", "saves_count", "saves")

		if f, ok := itemFloat(item, "engagement_rate", "eng_rate"); ok {
			ci.EngRate = floatPtr(normalize.Percentage(f))
		}

		if ci.ID == "" && ci.URL == "" && ci.Caption == "" && ci.Likes == nil && ci.Views == nil {
			continue
		}
		out = append(out, ci)
	}
	return out
}

// engagementCount probes engagement.<key> variants first, then the flat
// spellings on the item itself.
func engagementCount(item payload.Node, keys ...string) *int64 {
	for _, k := range keys {
		if f, ok := item.Float("engagement." + k); ok {
			return intPtr(int64(f))
		}
	}
	for _, k := range keys {
		if f, ok := item.Float(k); ok {
			return intPtr(int64(f))
		}
	}
	return nil
}

func performanceRank(s string) model.PerformanceRank {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "above_average", "top", "excellent":
		return model.PerformanceHigh
	case "average", "medium", "normal":
		return model.PerformanceAverage
	case "low", "below_average", "poor":
		return model.PerformanceLow
	default:
		return ""
	}
}
