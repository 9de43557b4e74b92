package resolve

import (
	"sort"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Pricing resolves the per-post-type pricing buckets. HasPricingData is true
// iff the pricing or explanations sub-object exists at all, independent of
// whether any individual field is populated.
func Pricing(n payload.Node) model.PricingProfile {
	pricing := n.FirstMap("pricing", "price_data", "rates")
	explanations := n.FirstMap("pricing_explanations", "price_explanations", "pricing.explanations")

	p := model.PricingProfile{
		HasPricingData: pricing != nil || explanations != nil,
		PostTypes:      []model.PostTypePricing{},
	}
	if pricing == nil && explanations == nil {
		return p
	}

	if s, ok := n.FirstString("pricing.currency", "price_data.currency", "pricing_currency"); ok {
		p.Currency = strPtr(strings.ToUpper(s))
	}

	// Bucket keys are sorted so output order does not depend on map
	// iteration.
	types := map[string]bool{}
	for key, v := range pricing {
		if key == "currency" || key == "explanations" {
			continue
		}
		if payload.AsNode(v) != nil {
			types[key] = true
		}
	}
	for key := range explanations {
		types[key] = true
	}

	keys := make([]string, 0, len(types))
	for key := range types {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p.PostTypes = append(p.PostTypes, postTypePricing(key, pricing.Map(key), explanations, explanations.Map(key)))
	}

	return p
}

func postTypePricing(postType string, bucket, explanations, explanation payload.Node) model.PostTypePricing {
	ptp := model.PostTypePricing{Type: strings.ToLower(postType)}

	if f, ok := bucket.FirstFloat("min", "minimum", "from"); ok {
		ptp.Min = floatPtr(f)
	}
	if f, ok := bucket.FirstFloat("max", "maximum", "to"); ok {
		ptp.Max = floatPtr(f)
	}
	if f, ok := bucket.FirstFloat("average", "avg", "mean"); ok {
		ptp.Average = floatPtr(f)
	}
	if f, ok := bucket.FirstFloat("median"); ok {
		ptp.Median = floatPtr(f)
	}
	if s, ok := bucket.FirstString("last_updated", "updated_at"); ok {
		ptp.LastUpdated = strPtr(s)
	}

	// An explanation entry may be a plain string or an object with a
	// description field.
	if s, ok := explanation.FirstString("description", "text", "explanation"); ok {
		ptp.Explanation = strPtr(s)
	} else if s, ok := explanations.String(postType); ok {
		ptp.Explanation = strPtr(s)
	}

	return ptp
}
