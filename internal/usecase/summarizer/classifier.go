package summarizer

import (
	"strings"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// Rule maps a label to the keywords that select it. Rules are evaluated in
// slice order; the first rule with a matching keyword wins.
type Rule struct {
	Label    string
	Keywords []string
}

// Tables holds the keyword tables the classifier matches against. The tables
// are read-only after construction and safe to share across goroutines.
type Tables struct {
	Priority        []Rule
	DeadlineUrgency []string
	Effort          []Rule
	EffortDefault   string
	MeetingType     []Rule
	MeetingDefault  string
}

// DefaultTables returns the standard classification tables.
func DefaultTables() Tables {
	return Tables{
		Priority: []Rule{
			{Label: entities.PriorityHigh, Keywords: []string{"urgent", "critical", "asap", "immediately", "priority", "important"}},
			{Label: entities.PriorityMedium, Keywords: []string{"soon", "next week", "following week", "moderate"}},
			{Label: entities.PriorityLow, Keywords: []string{"when possible", "low priority", "nice to have"}},
		},
		DeadlineUrgency: []string{"today", "tomorrow", "asap", "urgent"},
		Effort: []Rule{
			{Label: "Low (1-2 hours)", Keywords: []string{"review", "check", "verify"}},
			{Label: "Medium (4-8 hours)", Keywords: []string{"prepare", "create", "draft"}},
			{Label: "High (1-3 days)", Keywords: []string{"implement", "develop", "build"}},
			{Label: "Medium (1-2 days)", Keywords: []string{"coordinate", "organize", "plan"}},
		},
		EffortDefault: "Medium (1 day)",
		MeetingType: []Rule{
			{Label: "Project Kickoff", Keywords: []string{"kickoff", "launch", "start"}},
			{Label: "Status Review", Keywords: []string{"review", "status", "progress"}},
			{Label: "Planning", Keywords: []string{"planning", "strategy", "roadmap"}},
			{Label: "Retrospective", Keywords: []string{"retrospective", "post-mortem", "lessons"}},
			{Label: "Decision Making", Keywords: []string{"decision", "approval", "sign-off"}},
		},
		MeetingDefault: "General Discussion",
	}
}

// Classifier maps free text to categorical labels by case-insensitive
// substring matching against its tables. It has no mutable state.
type Classifier struct {
	tables Tables
}

// NewClassifier creates a classifier over the given tables.
func NewClassifier(tables Tables) *Classifier {
	return &Classifier{tables: tables}
}

// DerivePriority determines an action item's priority from its task and
// deadline text. Precedence: high task keywords, then urgent deadline
// keywords, then medium and low task keywords, then the Medium default.
func (c *Classifier) DerivePriority(task, deadline string) string {
	task = strings.ToLower(task)
	deadline = strings.ToLower(deadline)

	if containsAny(task, c.tables.Priority[0].Keywords) {
		return c.tables.Priority[0].Label
	}
	if containsAny(deadline, c.tables.DeadlineUrgency) {
		return entities.PriorityHigh
	}
	for _, rule := range c.tables.Priority[1:] {
		if containsAny(task, rule.Keywords) {
			return rule.Label
		}
	}
	return entities.PriorityMedium
}

// EstimateEffort maps task text to an effort label via the effort table.
func (c *Classifier) EstimateEffort(task string) string {
	return c.matchOrDefault(task, c.tables.Effort, c.tables.EffortDefault)
}

// ClassifyMeetingType maps the union of topic and summary text to a meeting
// category.
func (c *Classifier) ClassifyMeetingType(topics []string, summary string) string {
	text := strings.Join(topics, " ") + " " + summary
	return c.matchOrDefault(text, c.tables.MeetingType, c.tables.MeetingDefault)
}

func (c *Classifier) matchOrDefault(text string, rules []Rule, def string) string {
	text = strings.ToLower(text)
	for _, rule := range rules {
		if containsAny(text, rule.Keywords) {
			return rule.Label
		}
	}
	return def
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
