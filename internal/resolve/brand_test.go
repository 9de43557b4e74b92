package resolve

import "testing"

func TestBrand_Affinities(t *testing.T) {
	n := mustParse(t, `{
		"brand_affinity": [
			{"name": "Nike", "value": 35},
			{"name": "Adidas", "value": 0.2}
		]
	}`)

	got := Brand(n)

	if len(got.Affinities) != 2 {
		t.Fatalf("affinities = %v", got.Affinities)
	}
	if got.Affinities[0].Value != 0.35 || got.Affinities[1].Value != 0.2 {
		t.Errorf("values = %v, %v, want 0.35, 0.2",
			got.Affinities[0].Value, got.Affinities[1].Value)
	}
	if got.Affinities[0].Rank != 1 || got.Affinities[1].Rank != 2 {
		t.Error("ranks must follow source order")
	}
}

func TestBrand_SponsoredCountDerived(t *testing.T) {
	n := mustParse(t, `{
		"sponsored_brands": ["Acme", "Globex", "Acme"]
	}`)

	got := Brand(n)
	if len(got.SponsoredBrands) != 2 {
		t.Fatalf("brands = %v, want deduped", got.SponsoredBrands)
	}
	if got.SponsoredCount == nil || *got.SponsoredCount != 2 {
		t.Errorf("count = %v, want derived 2", got.SponsoredCount)
	}
}

func TestBrand_SponsoredCountExplicitWins(t *testing.T) {
	n := mustParse(t, `{
		"sponsored_brands_count": 9,
		"sponsored_brands": ["Acme"]
	}`)

	got := Brand(n)
	if got.SponsoredCount == nil || *got.SponsoredCount != 9 {
		t.Errorf("count = %v, want explicit 9", got.SponsoredCount)
	}
}

func TestBrand_EmptyShape(t *testing.T) {
	got := Brand(mustParse(t, `{}`))

	if got.Affinities == nil || got.MentionedBrands == nil || got.SponsoredBrands == nil {
		t.Error("containers must be non-nil")
	}
	if got.SponsoredCount != nil {
		t.Error("count must be nil when nothing is known")
	}
}
