package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name    string
		topics  int
		actions int
		want    string
	}{
		{"empty meeting", 0, 0, "15 minutes"},
		{"one topic", 1, 0, "25 minutes"},
		{"exactly an hour", 3, 3, "60 minutes"},
		{"just over an hour", 4, 1, "1h 10m"},
		{"kickoff scenario", 4, 4, "1h 15m"},
		{"long meeting", 10, 10, "2h 45m"},
		{"exact hours", 9, 3, "2h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDuration(tt.topics, tt.actions))
		})
	}
}

// Estimated minutes never decrease as content grows.
func TestEstimateDuration_Monotonic(t *testing.T) {
	minutes := func(topics, actions int) int {
		return baseMinutes + topics*minutesPerTopic + actions*minutesPerAction
	}

	for topics := 0; topics < 20; topics++ {
		for actions := 0; actions < 20; actions++ {
			assert.LessOrEqual(t, minutes(topics, actions), minutes(topics+1, actions))
			assert.LessOrEqual(t, minutes(topics, actions), minutes(topics, actions+1))
		}
	}
}
