package resolve

import "testing"

func TestAdvanced_Scores(t *testing.T) {
	n := mustParse(t, `{
		"advanced": {
			"growth_quality": 82,
			"viral_potential": 0.31
		},
		"engagement_authenticity": 0.77
	}`)

	got := Advanced(n)

	if got.GrowthQuality == nil || *got.GrowthQuality != 0.82 {
		t.Errorf("growth quality = %v, want 0.82", got.GrowthQuality)
	}
	if got.ViralPotential == nil || *got.ViralPotential != 0.31 {
		t.Errorf("viral potential = %v, want 0.31", got.ViralPotential)
	}
	if got.EngagementAuthenticity == nil || *got.EngagementAuthenticity != 0.77 {
		t.Errorf("engagement authenticity = %v, want 0.77", got.EngagementAuthenticity)
	}
	if got.AudienceStability != nil || got.CommentAuthenticity != nil {
		t.Error("absent scores must stay nil")
	}
}
