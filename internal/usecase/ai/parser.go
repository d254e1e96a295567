package ai

import (
	"encoding/json"
	"strings"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// Parser handles parsing and normalization of Granite model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseSummaryResponse extracts a RawSummary from raw model output. The
// model may wrap the JSON object in prose or markdown fences, so the parser
// works on the slice between the first '{' and the last '}'. Any parse
// failure yields the degraded fallback summary instead of an error.
func (p *Parser) ParseSummaryResponse(raw string) entities.RawSummary {
	jsonStr, ok := extractJSON(raw)
	if !ok {
		return fallbackSummary(raw)
	}

	var summary entities.RawSummary
	if err := json.Unmarshal([]byte(jsonStr), &summary); err != nil {
		return fallbackSummary(raw)
	}

	normalize(&summary)
	return summary
}

// extractJSON returns the substring between the first '{' and the last '}'.
func extractJSON(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// normalize ensures collection fields are non-nil after a successful parse
// so downstream code never branches on nil.
func normalize(s *entities.RawSummary) {
	if s.TopicsDiscussed == nil {
		s.TopicsDiscussed = make([]string, 0)
	}
	if s.KeyDecisions == nil {
		s.KeyDecisions = make([]string, 0)
	}
	if s.ActionItems == nil {
		s.ActionItems = make([]entities.RawActionItem, 0)
	}
}

// fallbackSummary builds a degraded but well-formed summary from unparseable
// model output.
func fallbackSummary(raw string) entities.RawSummary {
	text := strings.TrimSpace(raw)
	if len(text) > 200 {
		text = text[:200] + "..."
	}

	return entities.RawSummary{
		Summary:         text,
		TopicsDiscussed: []string{"General discussion"},
		KeyDecisions:    []string{"No specific decisions identified"},
		ActionItems:     make([]entities.RawActionItem, 0),
		NextSteps:       "Review and follow up on discussed items",
	}
}
