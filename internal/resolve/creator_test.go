package resolve

import "testing"

func TestCreator_Fields(t *testing.T) {
	n := mustParse(t, `{
		"profile": {
			"gender": "f",
			"age_group": "25-34",
			"language": "pt",
			"country_code": "BR",
			"city": "Sao Paulo",
			"account_type": "Creator",
			"bio": "fitness and travel"
		},
		"interests": ["Fitness", "Travel"]
	}`)

	got := Creator(n)

	if got.Gender == nil || *got.Gender != "Female" {
		t.Errorf("gender = %v, want Female", got.Gender)
	}
	if got.AgeRange == nil || *got.AgeRange != "25-34" {
		t.Errorf("age range = %v", got.AgeRange)
	}
	if got.Language == nil || *got.Language != "Portuguese" {
		t.Errorf("language = %v, want Portuguese", got.Language)
	}
	if got.Country == nil || *got.Country != "Brazil" {
		t.Errorf("country = %v, want Brazil", got.Country)
	}
	if got.AccountType == nil || *got.AccountType != "creator" {
		t.Errorf("account type = %v, want lowercase creator", got.AccountType)
	}
	if len(got.Interests) != 2 {
		t.Errorf("interests = %v", got.Interests)
	}
}

func TestCreator_FullNamesPassThrough(t *testing.T) {
	n := mustParse(t, `{
		"profile": {"language": "Portuguese", "country": "Brazil"}
	}`)

	got := Creator(n)
	if got.Language == nil || *got.Language != "Portuguese" {
		t.Errorf("language = %v", got.Language)
	}
	if got.Country == nil || *got.Country != "Brazil" {
		t.Errorf("country = %v", got.Country)
	}
}

func TestCreator_EmptyShape(t *testing.T) {
	got := Creator(mustParse(t, `{}`))

	if got.Gender != nil || got.Bio != nil || got.Country != nil {
		t.Error("absent fields must be nil")
	}
	if got.Interests == nil || len(got.Interests) != 0 {
		t.Error("interests must be non-nil empty")
	}
}
