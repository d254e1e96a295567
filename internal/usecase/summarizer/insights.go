package summarizer

import (
	"fmt"
	"strings"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// GenerateInsights derives narrative observations from the enriched action
// items, topics and decisions. Each rule is evaluated independently; the
// result may be empty.
func GenerateInsights(items []entities.EnrichedActionItem, topics, decisions []string) []string {
	insights := make([]string, 0)

	if len(items) > 0 {
		if line, ok := workloadInsight(items); ok {
			insights = append(insights, line)
		}

		highCount := 0
		for _, item := range items {
			if item.Priority == entities.PriorityHigh {
				highCount++
			}
		}
		if float64(highCount) > float64(len(items))/2 {
			insights = append(insights, "High number of urgent tasks identified - consider resource allocation")
		}
	}

	if len(topics) > 5 {
		insights = append(insights, "Meeting covered many topics - consider breaking into focused sessions")
	}

	if len(decisions) > 0 {
		insights = append(insights, fmt.Sprintf("Key decisions made: %d important outcomes", len(decisions)))
	}

	return insights
}

// workloadInsight summarizes per-owner task counts in first-seen owner order.
// Emitted only when tasks span more than one owner.
func workloadInsight(items []entities.EnrichedActionItem) (string, bool) {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, item := range items {
		owner := item.Owner
		if owner == "" {
			owner = "Unknown"
		}
		if _, seen := counts[owner]; !seen {
			order = append(order, owner)
		}
		counts[owner]++
	}

	if len(order) <= 1 {
		return "", false
	}

	parts := make([]string, 0, len(order))
	for _, owner := range order {
		parts = append(parts, fmt.Sprintf("%s (%d tasks)", owner, counts[owner]))
	}
	return "Workload distribution: " + strings.Join(parts, ", "), true
}
