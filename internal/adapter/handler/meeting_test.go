package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graniteworks/meeting-insights/internal/infrastructure/cache"
	aiuse "github.com/graniteworks/meeting-insights/internal/usecase/ai"
	"github.com/graniteworks/meeting-insights/internal/usecase/summarizer"
	pkgai "github.com/graniteworks/meeting-insights/pkg/ai"
	"github.com/graniteworks/meeting-insights/pkg/config"
	pkgvalidator "github.com/graniteworks/meeting-insights/pkg/validator"
)

func newTestEcho(t *testing.T) (*echo.Echo, *Meeting) {
	t.Helper()

	granite := pkgai.NewGraniteClient(&config.GraniteConfig{MockMode: true})
	enhancer := summarizer.NewEnhancer(summarizer.DefaultTables())
	sessions := cache.NewSessionStore(time.Hour)
	svc := aiuse.NewService(granite, enhancer, sessions, nil, nil)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e, NewMeetingHandler(svc, nil)
}

func processDemoMeeting(t *testing.T, e *echo.Echo, h *Meeting) string {
	t.Helper()

	body := `{"transcript":"Kickoff meeting: Sarah to prepare specs by Friday."}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/process", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Process(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			SessionID string `json:"session_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.SessionID)
	return envelope.Data.SessionID
}

func TestProcess_ReturnsEnrichedSummary(t *testing.T) {
	e, h := newTestEcho(t)

	body := `{"transcript":"Kickoff meeting notes."}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/process", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Process(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			SessionID string `json:"session_id"`
			Summary   struct {
				Metadata struct {
					MeetingType      string `json:"meeting_type"`
					TotalActionItems int    `json:"total_action_items"`
				} `json:"metadata"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.SessionID)
	assert.Equal(t, "Project Kickoff", envelope.Data.Summary.Metadata.MeetingType)
	assert.Equal(t, 4, envelope.Data.Summary.Metadata.TotalActionItems)
}

func TestProcess_RejectsEmptyRequest(t *testing.T) {
	e, h := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/process", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Process(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary_UnknownSession(t *testing.T) {
	e, h := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/meetings/:id/summary")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.GetSummary(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport_Markdown(t *testing.T) {
	e, h := newTestEcho(t)
	sessionID := processDemoMeeting(t, e, h)

	req := httptest.NewRequest(http.MethodGet, "/?format=markdown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/meetings/:id/export")
	c.SetParamNames("id")
	c.SetParamValues(sessionID)

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# Meeting Summary"))
}

func TestExport_InvalidFormat(t *testing.T) {
	e, h := newTestEcho(t)
	sessionID := processDemoMeeting(t, e, h)

	req := httptest.NewRequest(http.MethodGet, "/?format=docx", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/meetings/:id/export")
	c.SetParamNames("id")
	c.SetParamValues(sessionID)

	require.NoError(t, h.Export(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
