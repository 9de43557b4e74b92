package engine

import (
	"reflect"
	"testing"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

func mustParse(t *testing.T, raw string) payload.Node {
	t.Helper()
	n, err := payload.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func TestExtract_EmptyPayloadIsFullyShaped(t *testing.T) {
	p := New().Extract(mustParse(t, `{}`))

	if p == nil {
		t.Fatal("extract returned nil")
	}
	if p.ProfileID != "" || p.Platform != nil || p.Username != nil {
		t.Error("identity fields must be empty for an empty payload")
	}
	if p.Trust.FollowerTypes == nil || p.Trust.SuspiciousActivityIndicators == nil {
		t.Error("trust containers must be non-nil")
	}
	if p.Professional.Emails == nil || p.Professional.SocialProfiles == nil {
		t.Error("professional containers must be non-nil")
	}
	if p.Audience.Demographics.Countries == nil || p.Audience.Likers.Languages == nil {
		t.Error("audience containers must be non-nil")
	}
	if p.Brand.Affinities == nil || p.Content.Top == nil || p.Livestream.TopGames == nil {
		t.Error("brand, content and livestream containers must be non-nil")
	}
	if p.Pricing.PostTypes == nil || p.Pricing.HasPricingData {
		t.Error("pricing must be empty but shaped")
	}
	// A zero credibility score still derives a risk classification.
	if p.Trust.RiskLevel != model.RiskHigh {
		t.Errorf("risk = %q, want high", p.Trust.RiskLevel)
	}
	if p.Extended != nil {
		t.Error("extended diagnostics must be absent by default")
	}
}

func TestExtract_NilNode(t *testing.T) {
	p := New().Extract(nil)
	if p == nil || p.Trust.FollowerTypes == nil {
		t.Fatal("nil payload must still produce a shaped profile")
	}
}

func TestExtract_Deterministic(t *testing.T) {
	raw := `{
		"profile": {"username": "chessqueen", "followers": 50000, "following": 400},
		"platform": "twitch",
		"audience": {
			"credibility_score": 0.82,
			"follower_types": [
				{"name": "real", "value": 0.71},
				{"name": "suspicious", "value": 0.09}
			],
			"countries": [{"code": "US", "value": 40}, {"code": "DE", "value": 25}]
		},
		"pricing": {"post": {"min": 100, "max": 300}, "story": {"min": 50}},
		"engagement": {"rate": 4.1, "avg_likes": 900}
	}`

	first := New().Extract(mustParse(t, raw))
	for i := 0; i < 20; i++ {
		next := New().Extract(mustParse(t, raw))
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d diverged from the first extraction", i)
		}
	}
}

func TestExtract_ProfileID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string id", `{"profile": {"id": "abc-123"}}`, "abc-123"},
		{"numeric pk", `{"pk": 17021991}`, "17021991"},
		{"username fallback", `{"profile": {"username": "nova"}}`, "nova"},
		{"nothing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New().Extract(mustParse(t, tt.raw))
			if p.ProfileID != tt.want {
				t.Errorf("profile id = %q, want %q", p.ProfileID, tt.want)
			}
		})
	}
}

func TestExtract_ExtendedDiagnostics(t *testing.T) {
	raw := `{"profile": {"is_business": true}, "monetization": {"cpm": 12.5}}`

	plain := New().Extract(mustParse(t, raw))
	if plain.Extended != nil {
		t.Fatal("extended must stay off without the option")
	}

	rich := New(WithExtendedDiagnostics()).Extract(mustParse(t, raw))
	if rich.Extended == nil {
		t.Fatal("extended must attach when enabled and populated")
	}
	if v, ok := rich.Extended.Business["is_business"]; !ok || v != true {
		t.Errorf("business block = %v", rich.Extended.Business)
	}
	if v, ok := rich.Extended.Monetization["cpm"]; !ok || v != 12.5 {
		t.Errorf("monetization block = %v", rich.Extended.Monetization)
	}
}

func TestUtilization_EmptyProfile(t *testing.T) {
	p := New().Extract(mustParse(t, `{}`))
	u := Utilization(p)

	// The empty profile still derives one suspicious-activity indicator, so
	// the trust domain reports a single populated field.
	if u.Trust != 1 {
		t.Errorf("trust = %d, want 1", u.Trust)
	}
	if u.Professional != 0 || u.Performance != 0 || u.Audience != 0 ||
		u.Brand != 0 || u.Pricing != 0 || u.Creator != 0 ||
		u.Advanced != 0 || u.Livestream != 0 {
		t.Errorf("unexpected non-zero domain counts: %+v", u)
	}
	if u.Total() != 1 {
		t.Errorf("total = %d, want 1", u.Total())
	}
}

func TestUtilization_Nil(t *testing.T) {
	if got := Utilization(nil); got.Total() != 0 {
		t.Errorf("utilization(nil) = %+v, want zero", got)
	}
}

func TestUtilization_CountsPopulatedFields(t *testing.T) {
	p := New().Extract(mustParse(t, `{
		"profile": {"followers": 1000, "following": 100},
		"engagement": {"rate": 2.5}
	}`))
	u := Utilization(p)

	// rate, followers, following, follower ratio.
	if u.Performance != 4 {
		t.Errorf("performance = %d, want 4", u.Performance)
	}
}
