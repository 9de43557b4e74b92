package resolve

import (
	"testing"

	"github.com/creatorlens/creatorlens/internal/model"
)

func TestContent_Collections(t *testing.T) {
	n := mustParse(t, `{
		"top_posts": [
			{"id": "1", "url": "https://example.com/p/1", "like_count": 100, "comment_count": 10}
		],
		"recent_posts": [
			{"id": "2", "caption": "hello"}
		],
		"sponsored_posts": [
			{"id": "3", "sponsor": "Acme", "likes": 50}
		]
	}`)

	got := Content(n)

	if len(got.Top) != 1 || len(got.Recent) != 1 || len(got.Sponsored) != 1 {
		t.Fatalf("collections = %d/%d/%d, want 1/1/1",
			len(got.Top), len(got.Recent), len(got.Sponsored))
	}
	if got.Top[0].Likes == nil || *got.Top[0].Likes != 100 {
		t.Errorf("top likes = %v, want 100", got.Top[0].Likes)
	}
	if got.Sponsored[0].Sponsor != "Acme" {
		t.Errorf("sponsor = %q, want Acme", got.Sponsored[0].Sponsor)
	}
}

func TestContent_NestedEngagementWins(t *testing.T) {
	// When the nested engagement object and a flat field disagree, the
	// nested object wins.
	n := mustParse(t, `{
		"top_posts": [{
			"id": "1",
			"likes": 5,
			"engagement": {"like_count": 500, "comment_count": 40}
		}]
	}`)

	got := Content(n)
	if len(got.Top) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Top))
	}
	if got.Top[0].Likes == nil || *got.Top[0].Likes != 500 {
		t.Errorf("likes = %v, want nested 500", got.Top[0].Likes)
	}
	if got.Top[0].Comments == nil || *got.Top[0].Comments != 40 {
		t.Errorf("comments = %v, want 40", got.Top[0].Comments)
	}
}

func TestContent_SkipsEmptyItems(t *testing.T) {
	n := mustParse(t, `{
		"top_posts": [
			{"type": "photo"},
			{"id": "real", "like_count": 1},
			"not an object"
		]
	}`)

	got := Content(n)
	if len(got.Top) != 1 || got.Top[0].ID != "real" {
		t.Errorf("items = %v, want only the identifiable one", got.Top)
	}
}

func TestContent_EngagementRateNormalized(t *testing.T) {
	n := mustParse(t, `{
		"top_posts": [{"id": "1", "engagement_rate": 4.2}]
	}`)

	got := Content(n)
	if got.Top[0].EngRate == nil || *got.Top[0].EngRate != 0.042 {
		t.Errorf("eng rate = %v, want 0.042", got.Top[0].EngRate)
	}
}

func TestContent_PerformanceRank(t *testing.T) {
	tests := []struct {
		in   string
		want model.PerformanceRank
	}{
		{"high", model.PerformanceHigh},
		{"above_average", model.PerformanceHigh},
		{"average", model.PerformanceAverage},
		{"below_average", model.PerformanceLow},
		{"something else", ""},
	}

	for _, tt := range tests {
		n := mustParse(t, `{}`)
		n["content_analysis"] = map[string]any{"performance_rank": tt.in}
		got := Content(n)
		if got.Analysis.PerformanceRank != tt.want {
			t.Errorf("rank(%q) = %q, want %q", tt.in, got.Analysis.PerformanceRank, tt.want)
		}
	}
}

func TestContent_Strategy(t *testing.T) {
	n := mustParse(t, `{
		"hashtags": ["#fitness", "#health"],
		"mentions": [{"username": "partner"}],
		"themes": [{"name": "workouts"}, {"name": "workouts"}]
	}`)

	got := Content(n)
	if len(got.Strategy.Hashtags) != 2 {
		t.Errorf("hashtags = %v", got.Strategy.Hashtags)
	}
	if len(got.Strategy.Mentions) != 1 || got.Strategy.Mentions[0] != "partner" {
		t.Errorf("mentions = %v, want [partner]", got.Strategy.Mentions)
	}
	if len(got.Strategy.Themes) != 1 {
		t.Errorf("themes = %v, want duplicates collapsed", got.Strategy.Themes)
	}
}

func TestContent_EmptyShape(t *testing.T) {
	got := Content(mustParse(t, `{}`))

	if got.Top == nil || got.Recent == nil || got.Sponsored == nil {
		t.Error("collections must be non-nil")
	}
	if got.Strategy.Hashtags == nil || got.Strategy.Mentions == nil ||
		got.Strategy.Interests == nil || got.Strategy.Themes == nil {
		t.Error("strategy lists must be non-nil")
	}
	if got.Analysis.PostingFrequency != nil || got.Analysis.PerformanceRank != "" {
		t.Error("analysis must be empty")
	}
}
