package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// Supported export formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Export renders the enriched summary in the requested format. Unknown
// formats fall back to plain text. The enriched structure holds only
// primitive and collection values, so JSON serialization cannot fail.
func Export(summary entities.EnrichedSummary, format string) string {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return "{}"
		}
		return string(b)
	case FormatMarkdown:
		return formatMarkdown(summary)
	default:
		return formatText(summary)
	}
}

func formatMarkdown(s entities.EnrichedSummary) string {
	var b strings.Builder

	b.WriteString("# Meeting Summary\n\n")
	fmt.Fprintf(&b, "**Date:** %s\n", s.Metadata.ProcessedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Type:** %s\n", s.Metadata.MeetingType)
	fmt.Fprintf(&b, "**Duration:** %s\n\n", s.Metadata.EstimatedDuration)

	fmt.Fprintf(&b, "## Summary\n%s\n\n", s.Summary)

	b.WriteString("## Topics Discussed\n")
	for _, topic := range s.TopicsDiscussed {
		fmt.Fprintf(&b, "- %s\n", topic)
	}
	b.WriteString("\n")

	b.WriteString("## Key Decisions\n")
	for _, decision := range s.KeyDecisions {
		fmt.Fprintf(&b, "- %s\n", decision)
	}
	b.WriteString("\n")

	b.WriteString("## Action Items\n")
	for _, item := range s.ActionItems {
		fmt.Fprintf(&b, "- **%s** (Owner: %s, Priority: %s, Deadline: %s)\n",
			item.Task, ownerOrUnassigned(item.Owner), item.Priority, item.Deadline)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Next Steps\n%s\n\n", s.NextSteps)

	if len(s.Insights) > 0 {
		b.WriteString("## Insights\n")
		for _, insight := range s.Insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}

	return b.String()
}

func formatText(s entities.EnrichedSummary) string {
	var b strings.Builder

	b.WriteString("MEETING SUMMARY\n")
	fmt.Fprintf(&b, "Date: %s\n", s.Metadata.ProcessedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Type: %s\n", s.Metadata.MeetingType)
	fmt.Fprintf(&b, "Duration: %s\n\n", s.Metadata.EstimatedDuration)

	fmt.Fprintf(&b, "SUMMARY:\n%s\n\n", s.Summary)

	b.WriteString("TOPICS DISCUSSED:\n")
	for _, topic := range s.TopicsDiscussed {
		fmt.Fprintf(&b, "- %s\n", topic)
	}
	b.WriteString("\n")

	b.WriteString("KEY DECISIONS:\n")
	for _, decision := range s.KeyDecisions {
		fmt.Fprintf(&b, "- %s\n", decision)
	}
	b.WriteString("\n")

	b.WriteString("ACTION ITEMS:\n")
	for _, item := range s.ActionItems {
		fmt.Fprintf(&b, "- %s (Owner: %s, Priority: %s, Deadline: %s)\n",
			item.Task, ownerOrUnassigned(item.Owner), item.Priority, item.Deadline)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "NEXT STEPS:\n%s\n", s.NextSteps)

	return b.String()
}

func ownerOrUnassigned(owner string) string {
	if owner == "" {
		return "Unassigned"
	}
	return owner
}
