package resolve

import (
	"testing"
)

func TestPricing_AbsentVsEmpty(t *testing.T) {
	absent := Pricing(mustParse(t, `{}`))
	if absent.HasPricingData {
		t.Error("no pricing object: HasPricingData must be false")
	}
	if absent.PostTypes == nil || len(absent.PostTypes) != 0 {
		t.Error("PostTypes must be non-nil empty")
	}

	// A present but empty pricing object still flags data presence.
	empty := Pricing(mustParse(t, `{"pricing": {}}`))
	if !empty.HasPricingData {
		t.Error("empty pricing object: HasPricingData must be true")
	}
	if len(empty.PostTypes) != 0 {
		t.Errorf("empty pricing object: PostTypes = %v, want empty", empty.PostTypes)
	}
}

func TestPricing_Buckets(t *testing.T) {
	n := mustParse(t, `{
		"pricing": {
			"currency": "usd",
			"post": {"min": 500, "max": 1500, "average": 900},
			"story": {"min": 200, "max": 600, "median": 350, "last_updated": "2024-11-01"}
		}
	}`)

	got := Pricing(n)

	if !got.HasPricingData {
		t.Fatal("expected pricing data")
	}
	if got.Currency == nil || *got.Currency != "USD" {
		t.Errorf("currency = %v, want USD", got.Currency)
	}

	if len(got.PostTypes) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got.PostTypes))
	}

	// Buckets come out in sorted key order.
	if got.PostTypes[0].Type != "post" || got.PostTypes[1].Type != "story" {
		t.Errorf("bucket order = %q, %q, want post, story",
			got.PostTypes[0].Type, got.PostTypes[1].Type)
	}

	post := got.PostTypes[0]
	if post.Min == nil || *post.Min != 500 || post.Max == nil || *post.Max != 1500 {
		t.Errorf("post bucket = %+v", post)
	}
	if post.Median != nil {
		t.Error("post median should be nil when absent")
	}

	story := got.PostTypes[1]
	if story.Median == nil || *story.Median != 350 {
		t.Errorf("story median = %v, want 350", story.Median)
	}
	if story.LastUpdated == nil || *story.LastUpdated != "2024-11-01" {
		t.Errorf("story last_updated = %v", story.LastUpdated)
	}
}

func TestPricing_ExplanationsOnly(t *testing.T) {
	// Explanations without a pricing object still produce buckets.
	n := mustParse(t, `{
		"pricing_explanations": {
			"reel": "Priced from recent sponsored reels."
		}
	}`)

	got := Pricing(n)
	if !got.HasPricingData {
		t.Fatal("explanations alone must flag pricing data")
	}
	if len(got.PostTypes) != 1 || got.PostTypes[0].Type != "reel" {
		t.Fatalf("buckets = %v, want one reel bucket", got.PostTypes)
	}
	if got.PostTypes[0].Explanation == nil ||
		*got.PostTypes[0].Explanation != "Priced from recent sponsored reels." {
		t.Errorf("explanation = %v", got.PostTypes[0].Explanation)
	}
	if got.PostTypes[0].Min != nil || got.PostTypes[0].Average != nil {
		t.Error("numeric fields must stay nil without a pricing bucket")
	}
}

func TestPricing_ExplanationObject(t *testing.T) {
	n := mustParse(t, `{
		"pricing": {"video": {"average": 1200}},
		"pricing_explanations": {"video": {"description": "Modeled estimate."}}
	}`)

	got := Pricing(n)
	if len(got.PostTypes) != 1 {
		t.Fatalf("buckets = %v", got.PostTypes)
	}
	v := got.PostTypes[0]
	if v.Average == nil || *v.Average != 1200 {
		t.Errorf("average = %v, want 1200", v.Average)
	}
	if v.Explanation == nil || *v.Explanation != "Modeled estimate." {
		t.Errorf("explanation = %v", v.Explanation)
	}
}
