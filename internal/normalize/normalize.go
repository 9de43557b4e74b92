// Package normalize holds the pure normalization primitives shared by every
// domain resolver. All functions are total and stateless: they never fail,
// never do I/O, and are safe to call from concurrent extractions.
package normalize

import (
	"math"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
)

// Percentage resolves the decimal-vs-whole-number ambiguity of the source:
// a value above 1 is assumed to already be a percentage and is divided by
// 100 (35 -> 0.35); anything else is already a decimal (0.35 -> 0.35).
//
// Known limitation: a legitimate ratio above 1 (e.g. a true 150%) is
// indistinguishable from a mis-scaled decimal. The provider never resolves
// this ambiguity either, so the heuristic is kept for compatibility.
func Percentage(x float64) float64 {
	if x > 1 {
		return x / 100
	}
	return x
}

// Percent100 is the integer 0-100 counterpart: values above 1 are assumed
// already expressed 0-100 and rounded; values at or below 1 are scaled up.
func Percent100(x float64) int {
	if x > 1 {
		return int(math.Round(x))
	}
	return int(math.Round(x * 100))
}

// Gender canonicalizes a gender label to Male/Female/Other. Unrecognized
// labels pass through title-cased.
func Gender(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return "Male"
	case "female", "f":
		return "Female"
	case "other", "o":
		return "Other"
	case "":
		return ""
	}
	return TitleCase(s)
}

// FollowerType classifies a follower-bucket name by substring: buckets that
// sound authentic are positive, buckets that sound fraudulent are negative,
// everything else is neutral.
func FollowerType(name string) model.FollowerTypeCategory {
	lower := strings.ToLower(name)
	for _, kw := range []string{"real", "genuine", "authentic"} {
		if strings.Contains(lower, kw) {
			return model.FollowerTypePositive
		}
	}
	for _, kw := range []string{"suspicious", "fake", "bot"} {
		if strings.Contains(lower, kw) {
			return model.FollowerTypeNegative
		}
	}
	return model.FollowerTypeNeutral
}

// ContactKind buckets a raw contact-type label into one of the five
// canonical categories.
type ContactKind string

const (
	ContactEmail   ContactKind = "email"
	ContactPhone   ContactKind = "phone"
	ContactWebsite ContactKind = "website"
	ContactSocial  ContactKind = "social"
	ContactOther   ContactKind = "other"
)

// Contact categorizes a raw contact-type label by substring.
func Contact(rawType string) ContactKind {
	lower := strings.ToLower(rawType)
	switch {
	case strings.Contains(lower, "email") || strings.Contains(lower, "mail"):
		return ContactEmail
	case strings.Contains(lower, "phone") || strings.Contains(lower, "tel") ||
		strings.Contains(lower, "whatsapp") || strings.Contains(lower, "mobile"):
		return ContactPhone
	case strings.Contains(lower, "website") || strings.Contains(lower, "site") ||
		strings.Contains(lower, "url") || strings.Contains(lower, "link"):
		return ContactWebsite
	case strings.Contains(lower, "instagram") || strings.Contains(lower, "tiktok") ||
		strings.Contains(lower, "youtube") || strings.Contains(lower, "twitter") ||
		strings.Contains(lower, "twitch") || strings.Contains(lower, "facebook") ||
		strings.Contains(lower, "social"):
		return ContactSocial
	default:
		return ContactOther
	}
}

// Completeness scores contact resolution 0-100: each of the five categories
// (emails, phones, websites, social profiles, location) counts when
// populated, and the score is round(100 * populated / 5).
func Completeness(emails, phones, websites, socials int, hasLocation bool) int {
	populated := 0
	if emails > 0 {
		populated++
	}
	if phones > 0 {
		populated++
	}
	if websites > 0 {
		populated++
	}
	if socials > 0 {
		populated++
	}
	if hasLocation {
		populated++
	}
	return int(math.Round(float64(populated) / 5 * 100))
}

// TitleCase uppercases the first letter of each space-separated word,
// lowercasing the rest.
func TitleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
