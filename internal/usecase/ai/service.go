package ai

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/graniteworks/meeting-insights/errors"
	"github.com/graniteworks/meeting-insights/internal/domain/entities"
	"github.com/graniteworks/meeting-insights/internal/infrastructure/cache"
	"github.com/graniteworks/meeting-insights/internal/usecase/summarizer"
	pkgai "github.com/graniteworks/meeting-insights/pkg/ai"
)

// Service defines the meeting processing pipeline
type Service interface {
	ProcessMeeting(ctx context.Context, audioURL, transcript string) (*ProcessResult, error)
	GetSession(sessionID string) (*cache.Session, error)
	Export(sessionID, format string) (string, error)
}

// ProcessResult is the outcome of one processing run
type ProcessResult struct {
	SessionID  string
	Transcript string
	Summary    *entities.EnrichedSummary
}

type aiService struct {
	granite  *pkgai.GraniteClient
	parser   *Parser
	enhancer *summarizer.Enhancer
	sessions *cache.SessionStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs the processing service. The clock is injected so the
// pipeline stays deterministic under test; pass nil to use time.Now.
func NewService(
	granite *pkgai.GraniteClient,
	enhancer *summarizer.Enhancer,
	sessions *cache.SessionStore,
	logger *zap.Logger,
	now func() time.Time,
) Service {
	if now == nil {
		now = time.Now
	}
	return &aiService{
		granite:  granite,
		parser:   NewParser(),
		enhancer: enhancer,
		sessions: sessions,
		logger:   logger,
		now:      now,
	}
}

// ProcessMeeting runs the full pipeline: transcribe, summarize, parse,
// enhance, store. Provider failures never abort the run; each stage falls
// back to canned defaults so the result is always a well-formed summary.
func (s *aiService) ProcessMeeting(ctx context.Context, audioURL, transcript string) (*ProcessResult, error) {
	if transcript == "" {
		var err error
		transcript, err = s.granite.TranscribeAudio(ctx, audioURL)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("transcription failed, using demo transcript",
					zap.String("audio_url", audioURL),
					zap.Error(err),
				)
			}
			transcript = pkgai.MockTranscript()
		}
	}

	generated, err := s.granite.GenerateSummary(ctx, transcript)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("summarization failed, using demo summary",
				zap.Error(err),
			)
		}
		generated = pkgai.MockSummaryResponse()
	}

	raw := s.parser.ParseSummaryResponse(generated)
	enriched := s.enhancer.Enhance(raw, s.now())

	sessionID := uuid.New().String()
	s.sessions.Set(sessionID, &cache.Session{
		Transcript: transcript,
		Summary:    &enriched,
		CreatedAt:  s.now(),
	})

	if s.logger != nil {
		s.logger.Info("meeting processed",
			zap.String("session_id", sessionID),
			zap.String("meeting_type", enriched.Metadata.MeetingType),
			zap.Int("action_items", enriched.Metadata.TotalActionItems),
			zap.Int("insights", len(enriched.Insights)),
		)
	}

	return &ProcessResult{
		SessionID:  sessionID,
		Transcript: transcript,
		Summary:    &enriched,
	}, nil
}

// GetSession returns the stored session for the given id.
func (s *aiService) GetSession(sessionID string) (*cache.Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrSessionNotFound(sessionID)
	}
	return session, nil
}

// Export renders the session's enriched summary in the requested format.
func (s *aiService) Export(sessionID, format string) (string, error) {
	switch format {
	case summarizer.FormatText, summarizer.FormatMarkdown, summarizer.FormatJSON:
	default:
		return "", apperrors.ErrInvalidExportFormat(format)
	}

	session, err := s.GetSession(sessionID)
	if err != nil {
		return "", err
	}

	return summarizer.Export(*session.Summary, format), nil
}
