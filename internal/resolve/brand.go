package resolve

import (
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Brand resolves brand affinity and sponsorship history.
func Brand(n payload.Node) model.BrandProfile {
	b := model.BrandProfile{
		Affinities:      demographicEntries(n.FirstSlice("brand_affinity", "audience.brand_affinity", "brand_affinities"), axisPlain),
		MentionedBrands: stringList(n, []string{"name", "brand"}, "mentioned_brands", "brand_mentions"),
		SponsoredBrands: stringList(n, []string{"name", "brand"}, "sponsored_brands", "commercial_brands", "paid_partnerships"),
	}

	if i, ok := n.FirstInt("sponsored_brands_count", "paid_post_performance.brand_count"); ok {
		count := int(i)
		b.SponsoredCount = &count
	} else if len(b.SponsoredBrands) > 0 {
		count := len(b.SponsoredBrands)
		b.SponsoredCount = &count
	}

	return b
}
