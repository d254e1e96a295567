package summarizer

import "fmt"

// Duration estimate weights, in minutes. Rough content-volume heuristic: a
// base slot plus time per topic and per action item.
const (
	baseMinutes       = 15
	minutesPerTopic   = 10
	minutesPerAction  = 5
	minutesPerHourCap = 60
)

// EstimateDuration renders an estimated meeting duration from topic and
// action-item counts. At most an hour renders as minutes, anything longer as
// hours and minutes.
func EstimateDuration(topicCount, actionItemCount int) string {
	minutes := baseMinutes + topicCount*minutesPerTopic + actionItemCount*minutesPerAction

	if minutes <= minutesPerHourCap {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
