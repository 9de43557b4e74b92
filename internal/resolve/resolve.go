// Package resolve contains the ten domain resolvers. Each resolver is a pure
// function from the raw payload to a fully-populated domain slice of the
// canonical schema: absence of data is success, every field defaults to
// nil/0/false/empty per its type, and no resolver ever returns an error.
//
// Resolvers probe an ordered list of plausible source locations per logical
// field (the provider has shipped the same field under several names and
// nestings over time) and take the first hit, deduplicating by value where
// the same datum can surface in more than one location.
package resolve

import (
	"math"
	"strings"

	"github.com/creatorlens/creatorlens/internal/normalize"
	"github.com/creatorlens/creatorlens/internal/payload"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int64) *int64 {
	return &i
}

// ratioPtr normalizes a source number into a [0,1] decimal pointer.
func ratioPtr(f float64) *float64 {
	v := normalize.Percentage(f)
	return &v
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// itemString probes one array element for the first matching string key.
func itemString(item payload.Node, keys ...string) string {
	for _, k := range keys {
		if s, ok := item.String(k); ok {
			return s
		}
	}
	return ""
}

// itemFloat probes one array element for the first matching numeric key.
func itemFloat(item payload.Node, keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := item.Float(k); ok {
			return f, true
		}
	}
	return 0, false
}

// countryDisplay resolves two-letter codes through the country table and
// passes already-spelled-out names through unchanged.
func countryDisplay(s string) string {
	if len(s) == 2 {
		return normalize.CountryName(s)
	}
	return s
}

// stringList collects strings from the first populated candidate path. Array
// elements may be plain strings or objects carrying a name-like key.
func stringList(n payload.Node, namedKeys []string, paths ...string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range paths {
		raw := n.Slice(p)
		if len(raw) == 0 {
			continue
		}
		for _, v := range raw {
			var s string
			if str, ok := v.(string); ok {
				s = strings.TrimSpace(str)
			} else if item := payload.AsNode(v); item != nil {
				s = itemString(item, namedKeys...)
			}
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if !seen[key] {
				seen[key] = true
				out = append(out, s)
			}
		}
		break
	}
	return out
}
