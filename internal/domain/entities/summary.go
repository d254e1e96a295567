package entities

import "time"

// RawSummary is the structured output of the upstream summarization model,
// before any enrichment. Every field may be empty; downstream consumers apply
// their own defaults.
type RawSummary struct {
	Summary         string          `json:"summary"`
	TopicsDiscussed []string        `json:"topics_discussed"`
	KeyDecisions    []string        `json:"key_decisions"`
	ActionItems     []RawActionItem `json:"action_items"`
	NextSteps       string          `json:"next_steps"`
}

// RawActionItem is an action item as extracted by the model. Priority is
// optional; when empty it is derived during enrichment.
type RawActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority,omitempty"`
}

// EnrichedActionItem is a RawActionItem plus the fields derived during
// enrichment. Priority is always one of High/Medium/Low after enrichment.
type EnrichedActionItem struct {
	Task            string `json:"task"`
	Owner           string `json:"owner"`
	Deadline        string `json:"deadline"`
	Priority        string `json:"priority"`
	EstimatedEffort string `json:"estimated_effort"`
	Status          string `json:"status"`
	ID              string `json:"id"`
}

// SummaryMetadata holds derived meeting-level metadata.
type SummaryMetadata struct {
	ProcessedAt       time.Time `json:"processed_at"`
	TotalActionItems  int       `json:"total_action_items"`
	MeetingType       string    `json:"meeting_type"`
	EstimatedDuration string    `json:"estimated_duration"`
}

// Timeline partitions the enriched action items into four deadline buckets.
// Every action item appears in exactly one bucket.
type Timeline struct {
	Immediate []EnrichedActionItem `json:"immediate"`
	ThisWeek  []EnrichedActionItem `json:"this_week"`
	NextWeek  []EnrichedActionItem `json:"next_week"`
	Future    []EnrichedActionItem `json:"future"`
}

// EnrichedSummary is the output of the enrichment pipeline: the raw summary
// content plus metadata, enriched action items, insights and a timeline.
type EnrichedSummary struct {
	Summary         string               `json:"summary"`
	TopicsDiscussed []string             `json:"topics_discussed"`
	KeyDecisions    []string             `json:"key_decisions"`
	ActionItems     []EnrichedActionItem `json:"action_items"`
	NextSteps       string               `json:"next_steps"`
	Metadata        SummaryMetadata      `json:"metadata"`
	Insights        []string             `json:"insights"`
	Timeline        Timeline             `json:"timeline"`
}

// Action item status constants. Enrichment always creates items as pending;
// the other states are reachable only through the presentation layer.
const (
	ActionItemStatusPending    = "Pending"
	ActionItemStatusInProgress = "In Progress"
	ActionItemStatusCompleted  = "Completed"
)

// Priority labels used across classification and enrichment.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)
