package resolve

import (
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/normalize"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Creator resolves the creator's own demographics, as opposed to the
// audience's.
func Creator(n payload.Node) model.CreatorProfile {
	c := model.CreatorProfile{
		Interests: stringList(n, []string{"name"}, "profile.interests", "interests", "creator.interests"),
	}

	if s, ok := n.FirstString("profile.gender", "gender", "creator.gender"); ok {
		c.Gender = strPtr(normalize.Gender(s))
	}
	if s, ok := n.FirstString("profile.age_group", "age_group", "creator.age_range", "age_range"); ok {
		c.AgeRange = strPtr(s)
	}
	if s, ok := n.FirstString("profile.language", "language", "creator.language", "lang"); ok {
		c.Language = strPtr(languageDisplay(s))
	}
	if s, ok := n.FirstString("profile.country_code", "country_code", "profile.country", "country"); ok {
		c.Country = strPtr(countryDisplay(s))
	}
	if s, ok := n.FirstString("profile.city", "city", "creator.city"); ok {
		c.City = strPtr(s)
	}
	if s, ok := n.FirstString("profile.account_type", "account_type", "profile.type"); ok {
		c.AccountType = strPtr(strings.ToLower(s))
	}
	if s, ok := n.FirstString("profile.bio", "bio", "profile.description", "biography"); ok {
		c.Bio = strPtr(s)
	}

	return c
}

// languageDisplay resolves short codes through the language table and passes
// already-spelled-out names through unchanged.
func languageDisplay(s string) string {
	if len(s) <= 3 {
		return normalize.LanguageName(s)
	}
	return s
}
