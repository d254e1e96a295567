package summarizer

import (
	"time"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// Enhancer turns a raw summary into an enriched one. It carries no mutable
// state; a single instance is safe to share across concurrent sessions.
type Enhancer struct {
	classifier *Classifier
}

// NewEnhancer creates an enhancer over the given classification tables.
func NewEnhancer(tables Tables) *Enhancer {
	return &Enhancer{classifier: NewClassifier(tables)}
}

// Enhance produces the enriched summary for a raw summary. The caller
// supplies the processing time so the transform stays deterministic. The raw
// input is never mutated.
func (e *Enhancer) Enhance(raw entities.RawSummary, now time.Time) entities.EnrichedSummary {
	items := e.EnrichActionItems(raw.ActionItems)

	return entities.EnrichedSummary{
		Summary:         raw.Summary,
		TopicsDiscussed: copyStrings(raw.TopicsDiscussed),
		KeyDecisions:    copyStrings(raw.KeyDecisions),
		ActionItems:     items,
		NextSteps:       raw.NextSteps,
		Metadata: entities.SummaryMetadata{
			ProcessedAt:       now,
			TotalActionItems:  len(raw.ActionItems),
			MeetingType:       e.classifier.ClassifyMeetingType(raw.TopicsDiscussed, raw.Summary),
			EstimatedDuration: EstimateDuration(len(raw.TopicsDiscussed), len(raw.ActionItems)),
		},
		Insights: GenerateInsights(items, raw.TopicsDiscussed, raw.KeyDecisions),
		Timeline: BuildTimeline(items),
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
