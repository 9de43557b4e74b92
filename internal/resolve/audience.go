package resolve

import (
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/normalize"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// axisKind selects how a demographic axis derives its display name.
type axisKind int

const (
	axisPlain axisKind = iota
	axisCountry
	axisLanguage
)

// Audience resolves follower demographics, the mirrored significant-likers
// cohort, and audience behavior signals.
func Audience(n payload.Node) model.AudienceProfile {
	a := model.AudienceProfile{
		Demographics: demographics(n, "audience", "audience_followers", "followers_demographics"),
		Behavior:     behavior(n),
	}

	// The likers cohort has shipped under three different top-level keys.
	a.Likers = demographics(n, "audience_likers", "likers", "significant_likers")

	return a
}

// demographics maps every axis under the first populated root. Axis arrays
// are also probed at the payload root for the followers cohort, where old
// payload versions kept them flat.
func demographics(n payload.Node, roots ...string) model.Demographics {
	root := n.FirstMap(roots...)
	if root == nil {
		root = payload.Node{}
	}

	// For the primary audience roots, flat payloads double as the root.
	flat := payload.Node{}
	if roots[0] == "audience" {
		flat = n
	}

	return model.Demographics{
		Countries:   demographicEntries(axisSlice(root, flat, "countries", "audience_geo.countries", "geo_countries"), axisCountry),
		Cities:      demographicEntries(axisSlice(root, flat, "cities", "audience_geo.cities", "geo_cities"), axisPlain),
		GenderAge:   genderAgeEntries(axisSlice(root, flat, "gender_age", "genders_per_age", "demographics_by_age")),
		Ethnicities: demographicEntries(axisSlice(root, flat, "ethnicities", "audience_ethnicities"), axisPlain),
		Languages:   demographicEntries(axisSlice(root, flat, "languages", "audience_languages"), axisLanguage),
		Occupations: demographicEntries(axisSlice(root, flat, "occupations", "professions"), axisPlain),
		Income:      demographicEntries(axisSlice(root, flat, "income", "household_income"), axisPlain),
		Education:   demographicEntries(axisSlice(root, flat, "education", "education_levels"), axisPlain),
	}
}

func axisSlice(root, flat payload.Node, paths ...string) []any {
	if s := root.FirstSlice(paths...); len(s) > 0 {
		return s
	}
	return flat.FirstSlice(paths...)
}

// demographicEntries maps a raw axis array into the canonical shape: value
// normalized to [0,1], rank as 1-based source position.
func demographicEntries(raw []any, kind axisKind) []model.DemographicEntry {
	out := []model.DemographicEntry{}
	for _, v := range raw {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		code := itemString(item, "code", "country_code", "id")
		name := itemString(item, "name", "title", "label")
		value, ok := itemFloat(item, "value", "weight", "percent", "percentage")
		if !ok {
			continue
		}

		switch kind {
		case axisCountry:
			if code == "" {
				code = name
			}
			if name == "" || name == code {
				name = normalize.CountryName(code)
			}
		case axisLanguage:
			if code == "" {
				code = name
			}
			if name == "" || name == code {
				name = normalize.LanguageName(code)
			}
		default:
			if name == "" {
				name = code
			}
		}
		if name == "" && code == "" {
			continue
		}

		out = append(out, model.DemographicEntry{
			Code:  code,
			Name:  name,
			Value: normalize.Percentage(value),
			Rank:  len(out) + 1,
		})
	}
	return out
}

func genderAgeEntries(raw []any) []model.GenderAgeEntry {
	out := []model.GenderAgeEntry{}
	for _, v := range raw {
		item := payload.AsNode(v)
		if item == nil {
			continue
		}
		gender := normalize.Gender(itemString(item, "gender", "code"))
		ageRange := itemString(item, "age_range", "age", "range")
		value, ok := itemFloat(item, "value", "weight", "percent", "percentage")
		if !ok || (gender == "" && ageRange == "") {
			continue
		}
		out = append(out, model.GenderAgeEntry{
			Gender:   gender,
			AgeRange: ageRange,
			Value:    normalize.Percentage(value),
			Rank:     len(out) + 1,
		})
	}
	return out
}

func behavior(n payload.Node) model.AudienceBehavior {
	b := model.AudienceBehavior{}
	if f, ok := n.FirstFloat("audience.notable_users_ratio", "notable_users_ratio"); ok {
		b.NotableRatio = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("audience.audience_credibility", "audience.credibility_score", "credibility_score"); ok {
		b.CredibilityScore = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("audience.audience_reachability", "audience_reachability"); ok {
		b.Reachability = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("audience_likers.audience_credibility", "likers.credibility_score"); ok {
		b.LikersCredibility = ratioPtr(f)
	}
	if f, ok := n.FirstFloat("audience_likers.significant_likers_percentage", "significant_likers_percentage"); ok {
		b.SignificantLikersPct = ratioPtr(f)
	}
	return b
}
