package resolve

import (
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/payload"
)

// Livestream resolves streaming-platform analytics. When the source carries
// no livestream block at all the resolver short-circuits to the all-null
// shape; a present-but-empty block produces the same result.
func Livestream(n payload.Node) model.LivestreamProfile {
	l := model.LivestreamProfile{
		SubscriberTiers: []model.DemographicEntry{},
		TopGames:        []string{},
	}

	block := n.FirstMap("livestream", "live", "streaming", "livestream_metrics")
	if block == nil {
		return l
	}

	if f, ok := block.FirstFloat("watch_hours", "total_watch_hours"); ok {
		l.WatchHours = floatPtr(f)
	}
	if f, ok := block.FirstFloat("avg_concurrent_viewers", "average_ccv", "acv"); ok {
		l.AvgConcurrentViewers = floatPtr(f)
	}
	if i, ok := block.FirstInt("peak_viewers", "max_viewers", "peak_ccv"); ok {
		l.PeakViewers = intPtr(i)
	}
	if f, ok := block.FirstFloat("streams_per_week", "weekly_streams"); ok {
		l.StreamsPerWeek = floatPtr(f)
	}
	if f, ok := block.FirstFloat("chat_messages_per_hour", "chat_rate"); ok {
		l.ChatMessagesPerHour = floatPtr(f)
	}

	l.SubscriberTiers = demographicEntries(block.FirstSlice("subscriber_tiers", "sub_tiers"), axisPlain)
	l.TopGames = stringList(block, []string{"name", "game"}, "top_games", "games", "categories")

	return l
}
