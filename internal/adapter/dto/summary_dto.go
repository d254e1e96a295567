package dto

import (
	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// ProcessMeetingRequest is the request to process a meeting. Either an audio
// reference or a pre-supplied transcript must be present.
type ProcessMeetingRequest struct {
	AudioURL   string `json:"audio_url,omitempty" validate:"omitempty,url"`
	Transcript string `json:"transcript,omitempty" validate:"omitempty,min=1"`
}

// ProcessMeetingResponse is the response after a processing run
type ProcessMeetingResponse struct {
	SessionID string                    `json:"session_id"`
	Summary   *entities.EnrichedSummary `json:"summary"`
}

// SessionSummaryResponse wraps a stored session's enriched summary
type SessionSummaryResponse struct {
	SessionID string                    `json:"session_id"`
	Summary   *entities.EnrichedSummary `json:"summary"`
}

// TranscriptResponse returns the stored transcript for a session
type TranscriptResponse struct {
	SessionID  string `json:"session_id"`
	Transcript string `json:"transcript"`
}
