package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/graniteworks/meeting-insights/errors"
	"github.com/graniteworks/meeting-insights/internal/adapter/dto"
	"github.com/graniteworks/meeting-insights/internal/usecase/ai"
	"github.com/graniteworks/meeting-insights/internal/usecase/summarizer"
)

// Meeting handles the meeting processing endpoints
type Meeting struct {
	svc    ai.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc ai.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// Process runs the transcription/summarization/enrichment pipeline for an
// uploaded meeting and returns the session id plus the enriched summary.
func (h *Meeting) Process(c echo.Context) error {
	var req dto.ProcessMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if req.AudioURL == "" && req.Transcript == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio_url or transcript is required"))
	}

	result, err := h.svc.ProcessMeeting(c.Request().Context(), req.AudioURL, req.Transcript)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to process meeting", zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrProcessingFailed(err))
	}

	return HandleSuccess(h.logger, c, dto.ProcessMeetingResponse{
		SessionID: result.SessionID,
		Summary:   result.Summary,
	})
}

// GetSummary returns the enriched summary for a session
func (h *Meeting) GetSummary(c echo.Context) error {
	sessionID := c.Param("id")

	session, err := h.svc.GetSession(sessionID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.SessionSummaryResponse{
		SessionID: sessionID,
		Summary:   session.Summary,
	})
}

// GetTranscript returns the stored transcript for a session
func (h *Meeting) GetTranscript(c echo.Context) error {
	sessionID := c.Param("id")

	session, err := h.svc.GetSession(sessionID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.TranscriptResponse{
		SessionID:  sessionID,
		Transcript: session.Transcript,
	})
}

// Export renders a session's summary in the requested format. Text and
// markdown are served as text/plain, json as application/json.
func (h *Meeting) Export(c echo.Context) error {
	sessionID := c.Param("id")
	format := c.QueryParam("format")
	if format == "" {
		format = summarizer.FormatText
	}

	out, err := h.svc.Export(sessionID, format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if format == summarizer.FormatJSON {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(out))
	}
	return c.String(http.StatusOK, out)
}
