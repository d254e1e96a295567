package summarizer

import (
	"fmt"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// EnrichActionItems copies each raw action item into an enriched one,
// deriving priority and effort where needed. Order and cardinality are
// preserved; ids are task_1..task_N in input order, scoped to one summary.
func (e *Enhancer) EnrichActionItems(items []entities.RawActionItem) []entities.EnrichedActionItem {
	enriched := make([]entities.EnrichedActionItem, 0, len(items))

	for i, item := range items {
		priority := item.Priority
		if priority == "" {
			priority = e.classifier.DerivePriority(item.Task, item.Deadline)
		}

		enriched = append(enriched, entities.EnrichedActionItem{
			Task:            item.Task,
			Owner:           item.Owner,
			Deadline:        item.Deadline,
			Priority:        priority,
			EstimatedEffort: e.classifier.EstimateEffort(item.Task),
			Status:          entities.ActionItemStatusPending,
			ID:              fmt.Sprintf("task_%d", i+1),
		})
	}

	return enriched
}
