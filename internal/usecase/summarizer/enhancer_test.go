package summarizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

func kickoffSummary() entities.RawSummary {
	return entities.RawSummary{
		Summary: "Project kickoff meeting for the new customer portal.",
		TopicsDiscussed: []string{
			"Project overview",
			"Technical requirements",
			"Design approach",
			"Team coordination",
		},
		KeyDecisions: []string{
			"12-week development cycle approved",
			"Mobile-first design confirmed",
		},
		ActionItems: []entities.RawActionItem{
			{Task: "Prepare urgent API specification", Owner: "Sarah", Deadline: "Friday"},
			{Task: "Finalize design mockups", Owner: "Mike", Deadline: "Wednesday"},
			{Task: "Coordinate with DevOps team", Owner: "Sarah", Deadline: "Next week"},
			{Task: "Set up testing framework", Owner: "Mike", Deadline: ""},
		},
		NextSteps: "Schedule follow-up meeting for next Tuesday.",
	}
}

func TestEnhance_KickoffScenario(t *testing.T) {
	e := NewEnhancer(DefaultTables())
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	enriched := e.Enhance(kickoffSummary(), now)

	assert.Equal(t, now, enriched.Metadata.ProcessedAt)
	assert.Equal(t, "Project Kickoff", enriched.Metadata.MeetingType)
	assert.Equal(t, 4, enriched.Metadata.TotalActionItems)
	// 15 + 4*10 + 4*5 = 75 minutes.
	assert.Equal(t, "1h 15m", enriched.Metadata.EstimatedDuration)

	require.Len(t, enriched.ActionItems, 4)
	// The task containing "urgent" derives High without a declared priority.
	assert.Equal(t, "High", enriched.ActionItems[0].Priority)

	// Workload insight mentions both owners.
	require.NotEmpty(t, enriched.Insights)
	assert.Contains(t, enriched.Insights[0], "Sarah")
	assert.Contains(t, enriched.Insights[0], "Mike")
}

func TestEnhance_CountsConsistent(t *testing.T) {
	e := NewEnhancer(DefaultTables())

	enriched := e.Enhance(kickoffSummary(), time.Now())

	bucketTotal := len(enriched.Timeline.Immediate) +
		len(enriched.Timeline.ThisWeek) +
		len(enriched.Timeline.NextWeek) +
		len(enriched.Timeline.Future)

	assert.Equal(t, enriched.Metadata.TotalActionItems, len(enriched.ActionItems))
	assert.Equal(t, enriched.Metadata.TotalActionItems, bucketTotal)
}

func TestEnhance_NoActionItems(t *testing.T) {
	e := NewEnhancer(DefaultTables())

	raw := entities.RawSummary{
		Summary:         "Short sync.",
		TopicsDiscussed: []string{"One topic"},
		KeyDecisions:    []string{"Adjourn early"},
	}

	enriched := e.Enhance(raw, time.Now())

	assert.Equal(t, 0, enriched.Metadata.TotalActionItems)
	assert.Empty(t, enriched.ActionItems)
	assert.Empty(t, enriched.Timeline.Immediate)
	assert.Empty(t, enriched.Timeline.ThisWeek)
	assert.Empty(t, enriched.Timeline.NextWeek)
	assert.Empty(t, enriched.Timeline.Future)

	// Only the decisions line fires; no workload or priority insights.
	require.Len(t, enriched.Insights, 1)
	assert.Contains(t, enriched.Insights[0], "Key decisions made: 1")
}

func TestEnhance_DeadlineTomorrow(t *testing.T) {
	e := NewEnhancer(DefaultTables())

	raw := entities.RawSummary{
		ActionItems: []entities.RawActionItem{
			{Task: "Send the report", Owner: "Ana", Deadline: "tomorrow"},
		},
	}

	enriched := e.Enhance(raw, time.Now())

	require.Len(t, enriched.Timeline.Immediate, 1)
	assert.Equal(t, "High", enriched.Timeline.Immediate[0].Priority)
}

func TestEnhance_DoesNotMutateInput(t *testing.T) {
	e := NewEnhancer(DefaultTables())

	raw := kickoffSummary()
	topicsBefore := make([]string, len(raw.TopicsDiscussed))
	copy(topicsBefore, raw.TopicsDiscussed)

	enriched := e.Enhance(raw, time.Now())

	assert.Equal(t, topicsBefore, raw.TopicsDiscussed)
	assert.Empty(t, raw.ActionItems[0].Priority, "raw priority must stay unset")

	// Mutating the output must not leak back into the input.
	enriched.TopicsDiscussed[0] = "changed"
	assert.Equal(t, topicsBefore[0], raw.TopicsDiscussed[0])
}

func TestEnhance_DeterministicForFixedClock(t *testing.T) {
	e := NewEnhancer(DefaultTables())
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	first := e.Enhance(kickoffSummary(), now)
	second := e.Enhance(kickoffSummary(), now)

	assert.Equal(t, first, second)
}
