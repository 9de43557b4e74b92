package engine

import "github.com/creatorlens/creatorlens/internal/model"

// Utilization counts, per domain, how many canonical fields carry data
// (non-nil, non-empty, non-false, non-zero). It is pure observability: the
// counts never feed back into extraction, and a maximally empty profile is
// valid input.
func Utilization(p *model.ExtractedProfile) model.Utilization {
	if p == nil {
		return model.Utilization{}
	}
	return model.Utilization{
		Trust:        trustFields(p.Trust),
		Professional: professionalFields(p.Professional),
		Performance:  performanceFields(p.Performance),
		Content:      contentFields(p.Content),
		Audience:     audienceFields(p.Audience),
		Brand:        brandFields(p.Brand),
		Pricing:      pricingFields(p.Pricing),
		Creator:      creatorFields(p.Creator),
		Advanced:     advancedFields(p.Advanced),
		Livestream:   livestreamFields(p.Livestream),
	}
}

// countIf counts the conditions that hold.
func countIf(conds ...bool) int {
	n := 0
	for _, c := range conds {
		if c {
			n++
		}
	}
	return n
}

func trustFields(t model.TrustProfile) int {
	return countIf(
		t.CredibilityScore != 0,
		len(t.FollowerTypes) > 0,
		t.RealFollowersPercentage != 0,
		t.SuspiciousFollowersPercentage != 0,
		t.QualityFollowersPercentage != 0,
		t.MassFollowersPercentage != 0,
		t.InfluencerFollowersPercentage != 0,
		t.SignificantFollowersPercentage != 0,
		len(t.SuspiciousActivityIndicators) > 0,
		t.Verification.IsVerified,
		t.Verification.BadgeType != nil,
		t.Verification.VerifiedAt != nil,
	)
}

func professionalFields(p model.ProfessionalProfile) int {
	return countIf(
		len(p.Emails) > 0,
		len(p.Phones) > 0,
		len(p.Websites) > 0,
		len(p.SocialProfiles) > 0,
		p.Location.City != nil,
		p.Location.Country != nil,
		p.ProfileCompleteness != 0,
	)
}

func performanceFields(p model.PerformanceProfile) int {
	return countIf(
		p.Engagement.Rate != nil,
		p.Engagement.AvgLikes != nil,
		p.Engagement.AvgComments != nil,
		p.Engagement.AvgViews != nil,
		p.Engagement.AvgShares != nil,
		p.Engagement.AvgSaves != nil,
		p.Engagement.Trend != "",
		p.Sponsored.PostCount != nil,
		p.Sponsored.AvgLikes != nil,
		p.Sponsored.AvgComments != nil,
		p.Sponsored.PerformanceRatio != nil,
		p.Reputation.Followers != nil,
		p.Reputation.Following != nil,
		p.Reputation.ContentCount != nil,
		p.Reputation.FollowerRatio != nil,
		len(p.Trends.History) > 0,
		p.Trends.FollowerGrowth != nil,
		p.Trends.MonthlyGrowth != nil,
	)
}

func contentFields(c model.ContentProfile) int {
	return countIf(
		len(c.Top) > 0,
		len(c.Recent) > 0,
		len(c.Sponsored) > 0,
		c.Analysis.PostingFrequency != nil,
		c.Analysis.PerformanceRank != "",
		len(c.Strategy.Hashtags) > 0,
		len(c.Strategy.Mentions) > 0,
		len(c.Strategy.Interests) > 0,
		len(c.Strategy.Themes) > 0,
	)
}

func audienceFields(a model.AudienceProfile) int {
	return demographicsFields(a.Demographics) + demographicsFields(a.Likers) + countIf(
		a.Behavior.NotableRatio != nil,
		a.Behavior.CredibilityScore != nil,
		a.Behavior.Reachability != nil,
		a.Behavior.LikersCredibility != nil,
		a.Behavior.SignificantLikersPct != nil,
	)
}

func demographicsFields(d model.Demographics) int {
	return countIf(
		len(d.Countries) > 0,
		len(d.Cities) > 0,
		len(d.GenderAge) > 0,
		len(d.Ethnicities) > 0,
		len(d.Languages) > 0,
		len(d.Occupations) > 0,
		len(d.Income) > 0,
		len(d.Education) > 0,
	)
}

func brandFields(b model.BrandProfile) int {
	return countIf(
		len(b.Affinities) > 0,
		len(b.MentionedBrands) > 0,
		len(b.SponsoredBrands) > 0,
		b.SponsoredCount != nil,
	)
}

func pricingFields(p model.PricingProfile) int {
	return countIf(
		p.HasPricingData,
		p.Currency != nil,
		len(p.PostTypes) > 0,
	)
}

func creatorFields(c model.CreatorProfile) int {
	return countIf(
		c.Gender != nil,
		c.AgeRange != nil,
		c.Language != nil,
		c.Country != nil,
		c.City != nil,
		c.AccountType != nil,
		c.Bio != nil,
		len(c.Interests) > 0,
	)
}

func advancedFields(a model.AdvancedAnalyticsProfile) int {
	return countIf(
		a.GrowthQuality != nil,
		a.EngagementAuthenticity != nil,
		a.AudienceStability != nil,
		a.ViralPotential != nil,
		a.CommentAuthenticity != nil,
	)
}

func livestreamFields(l model.LivestreamProfile) int {
	return countIf(
		l.WatchHours != nil,
		l.AvgConcurrentViewers != nil,
		l.PeakViewers != nil,
		l.StreamsPerWeek != nil,
		l.ChatMessagesPerHour != nil,
		len(l.SubscriberTiers) > 0,
		len(l.TopGames) > 0,
	)
}
