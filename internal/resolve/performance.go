package resolve

import (
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Performance resolves engagement, sponsored performance, reputation counts
// and growth trends.
func Performance(n payload.Node) model.PerformanceProfile {
	return model.PerformanceProfile{
		Engagement: engagement(n),
		Sponsored:  sponsored(n),
		Reputation: reputation(n),
		Trends:     trends(n),
	}
}

func engagement(n payload.Node) model.EngagementMetrics {
	e := model.EngagementMetrics{}

	if f, ok := n.FirstFloat("engagement.rate", "engagement_rate", "profile.engagement_rate"); ok {
		e.Rate = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("engagement.avg_likes", "avg_likes", "average_likes"); ok {
		e.AvgLikes = floatPtr(f)
	}
	if f, ok := n.FirstFloat("engagement.avg_comments", "avg_comments", "average_comments"); ok {
		e.AvgComments = floatPtr(f)
	}
	if f, ok := n.FirstFloat("engagement.avg_views", "avg_views", "average_views"); ok {
		e.AvgViews = floatPtr(f)
	}
	if f, ok := n.FirstFloat("engagement.avg_shares", "avg_shares"); ok {
		e.AvgShares = floatPtr(f)
	}
	if f, ok := n.FirstFloat("engagement.avg_saves", "avg_saves"); ok {
		e.AvgSaves = floatPtr(f)
	}
	if s, ok := n.FirstString("engagement.trend", "engagement_trend", "trend"); ok {
		e.Trend = trendLabel(s)
	}
	return e
}

// trendLabel maps the source's trend vocabulary onto the canonical enum.
// Unrecognized labels read as absent.
func trendLabel(s string) model.Trend {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rising", "increasing", "up", "growing":
		return model.TrendRising
	case "stable", "flat", "steady":
		return model.TrendStable
	case "declining", "decreasing", "down", "falling":
		return model.TrendDeclining
	default:
		return ""
	}
}

func sponsored(n payload.Node) model.SponsoredMetrics {
	s := model.SponsoredMetrics{}

	if i, ok := n.FirstInt("sponsored.post_count", "sponsored_posts_count", "paid_post_performance.post_count"); ok {
		count := int(i)
		s.PostCount = &count
	}
	if f, ok := n.FirstFloat("sponsored.avg_likes", "sponsored_avg_likes", "paid_post_performance.avg_likes"); ok {
		s.AvgLikes = floatPtr(f)
	}
	if f, ok := n.FirstFloat("sponsored.avg_comments", "sponsored_avg_comments", "paid_post_performance.avg_comments"); ok {
		s.AvgComments = floatPtr(f)
	}

	if f, ok := n.FirstFloat("sponsored.performance_ratio", "paid_post_performance.performance", "sponsored_performance"); ok {
		s.PerformanceRatio = floatPtr(f)
	} else if s.AvgLikes != nil {
		// Derive sponsored-vs-organic parity when both baselines exist.
		if organic, ok := n.FirstFloat("engagement.avg_likes", "avg_likes", "average_likes"); ok && organic > 0 {
			s.PerformanceRatio = floatPtr(round2(*s.AvgLikes / organic))
		}
	}
	return s
}

func reputation(n payload.Node) model.Reputation {
	r := model.Reputation{}

	if i, ok := n.FirstInt("profile.followers", "followers", "follower_count", "reputation.followers"); ok {
		r.Followers = intPtr(i)
	}
	if i, ok := n.FirstInt("profile.following", "following", "following_count", "reputation.following"); ok {
		r.Following = intPtr(i)
	}
	if i, ok := n.FirstInt("profile.posts_count", "posts_count", "media_count", "content_count"); ok {
		r.ContentCount = intPtr(i)
	}
	if r.Followers != nil && r.Following != nil && *r.Following > 0 {
		r.FollowerRatio = floatPtr(round2(float64(*r.Followers) / float64(*r.Following)))
	}
	return r
}

func trends(n payload.Node) model.Trends {
	t := model.Trends{History: []model.ReputationPoint{}}

	raw := n.FirstSlice("reputation_history", "stats_history", "profile.reputation_history", "history")
	for _, v := range raw {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		point := model.ReputationPoint{
			Date: itemString(item, "date", "month", "period"),
		}
		if f, ok := itemFloat(item, "followers", "follower_count"); ok {
			point.Followers = intPtr(int64(f))
		}
		if f, ok := itemFloat(item, "following", "following_count"); ok {
			point.Following = intPtr(int64(f))
		}
		if point.Date == "" && point.Followers == nil && point.Following == nil {
			continue
		}
		t.History = append(t.History, point)
	}

	if f, ok := n.FirstFloat("growth.follower_growth", "follower_growth_rate", "growth_rate"); ok {
		t.FollowerGrowth = ratioPtr(f)
	} else if g, ok := seriesGrowth(t.History); ok {
		t.FollowerGrowth = floatPtr(g)
	}

	if f, ok := n.FirstFloat("growth.monthly", "monthly_growth", "growth.monthly_growth"); ok {
		t.MonthlyGrowth = ratioPtr(f)
	} else if len(t.History) >= 2 {
		// Last two samples approximate one month.
		if g, ok := seriesGrowth(t.History[len(t.History)-2:]); ok {
			t.MonthlyGrowth = floatPtr(g)
		}
	}

	return t
}

// seriesGrowth computes the overall follower growth rate across the history
// series: (last - first) / first.
func seriesGrowth(history []model.ReputationPoint) (float64, bool) {
	if len(history) < 2 {
		return 0, false
	}
	first, last := history[0].Followers, history[len(history)-1].Followers
	if first == nil || last == nil || *first <= 0 {
		return 0, false
	}
	return round2(float64(*last-*first) / float64(*first)), true
}
