package summarizer

import (
	"strings"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// Bucket labels for timeline classification.
const (
	bucketImmediate = "immediate"
	bucketThisWeek  = "this_week"
	bucketNextWeek  = "next_week"
	bucketFuture    = "future"
)

var (
	immediateKeywords = []string{"today", "tomorrow", "asap"}
	// "next week" and "following week" are matched before the generic "week"
	// keyword below, otherwise every next-week deadline would be swallowed by
	// the this_week bucket.
	nextWeekKeywords = []string{"next week", "following week"}
	thisWeekKeywords = []string{"friday", "this week", "week"}
)

// BuildTimeline partitions the action items into the four deadline buckets.
// Every item lands in exactly one bucket; empty or unrecognized deadlines go
// to future.
func BuildTimeline(items []entities.EnrichedActionItem) entities.Timeline {
	timeline := entities.Timeline{
		Immediate: make([]entities.EnrichedActionItem, 0),
		ThisWeek:  make([]entities.EnrichedActionItem, 0),
		NextWeek:  make([]entities.EnrichedActionItem, 0),
		Future:    make([]entities.EnrichedActionItem, 0),
	}

	for _, item := range items {
		switch bucketFor(item.Deadline) {
		case bucketImmediate:
			timeline.Immediate = append(timeline.Immediate, item)
		case bucketThisWeek:
			timeline.ThisWeek = append(timeline.ThisWeek, item)
		case bucketNextWeek:
			timeline.NextWeek = append(timeline.NextWeek, item)
		default:
			timeline.Future = append(timeline.Future, item)
		}
	}

	return timeline
}

func bucketFor(deadline string) string {
	deadline = strings.ToLower(deadline)

	switch {
	case containsAny(deadline, immediateKeywords):
		return bucketImmediate
	case containsAny(deadline, nextWeekKeywords):
		return bucketNextWeek
	case containsAny(deadline, thisWeekKeywords):
		return bucketThisWeek
	default:
		return bucketFuture
	}
}
