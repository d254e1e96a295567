package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/graniteworks/meeting-insights/pkg/config"
)

// GraniteClient is a minimal client for IBM watsonx.ai Granite model calls:
// speech-to-text for transcription and text generation for summarization.
// In mock mode both calls return canned demo data without touching the
// network.
type GraniteClient struct {
	apiKey    string
	baseURL   string
	projectID string
	mockMode  bool
	client    *http.Client
}

// NewGraniteClient creates a Granite client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGraniteClient(cfg *config.GraniteConfig) *GraniteClient {
	var apiKey, base, projectID string
	var mockMode bool
	timeout := 120 * time.Second

	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		projectID = cfg.ProjectID
		mockMode = cfg.MockMode
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("IBM_API_KEY")
	}
	if base == "" {
		base = os.Getenv("IBM_URL")
		if base == "" {
			base = "https://us-south.ml.cloud.ibm.com"
		}
	}
	if projectID == "" {
		projectID = os.Getenv("IBM_PROJECT_ID")
	}
	if apiKey == "" {
		mockMode = true
	}

	return &GraniteClient{
		apiKey:    apiKey,
		baseURL:   base,
		projectID: projectID,
		mockMode:  mockMode,
		client:    &http.Client{Timeout: timeout},
	}
}

// MockMode reports whether the client serves canned demo data.
func (g *GraniteClient) MockMode() bool {
	return g.mockMode
}

// GenerationRequest is the payload for /ml/v1/text/generation
type GenerationRequest struct {
	ModelID    string               `json:"model_id"`
	Input      string               `json:"input"`
	ProjectID  string               `json:"project_id,omitempty"`
	Parameters GenerationParameters `json:"parameters"`
}

// GenerationParameters tunes the generation call
type GenerationParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens,omitempty"`
	Temperature       float64 `json:"temperature,omitempty"`
	TopP              float64 `json:"top_p,omitempty"`
	RepetitionPenalty float64 `json:"repetition_penalty,omitempty"`
}

// GenerationResponse is a minimal response shape
type GenerationResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
	GeneratedText string `json:"generated_text"`
}

// TranscribeAudio transcribes the audio at the given reference using the
// Granite speech model. Falls back to the demo transcript in mock mode.
func (g *GraniteClient) TranscribeAudio(ctx context.Context, audioURL string) (string, error) {
	if g.mockMode {
		return MockTranscript(), nil
	}

	payload := map[string]string{
		"model_id":  "ibm/granite-speech-8b",
		"audio_url": audioURL,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/ml/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("granite speech returned status %d", resp.StatusCode)
	}

	var tr struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return tr.Text, nil
}

// GenerateSummary sends the transcript to the Granite instruct model and
// returns the raw generated text. Submission is retried with exponential
// backoff; callers are expected to fall back to MockSummaryResponse on error.
func (g *GraniteClient) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	if g.mockMode {
		return MockSummaryResponse(), nil
	}

	reqBody := GenerationRequest{
		ModelID:   "ibm/granite-3-3-8b-instruct",
		Input:     summarizationPrompt(transcript),
		ProjectID: g.projectID,
		Parameters: GenerationParameters{
			MaxNewTokens:      1000,
			Temperature:       0.3,
			TopP:              0.9,
			RepetitionPenalty: 1.1,
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var generated string
	submitFn := func() error {
		endpoint := g.baseURL + "/ml/v1/text/generation"
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		g.setHeaders(req)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			return backoff.Permanent(fmt.Errorf("granite authentication failed: status %d", resp.StatusCode))
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("granite returned status %d", resp.StatusCode)
		}

		var gr GenerationResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return backoff.Permanent(err)
		}
		if len(gr.Results) > 0 {
			generated = gr.Results[0].GeneratedText
		} else {
			generated = gr.GeneratedText
		}
		if generated == "" {
			return backoff.Permanent(fmt.Errorf("empty response from granite"))
		}
		return nil
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return generated, nil
}

func (g *GraniteClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.projectID != "" {
		req.Header.Set("X-IBM-Project-ID", g.projectID)
	}
}

func summarizationPrompt(transcript string) string {
	return fmt.Sprintf(`Please analyze the following meeting transcript and provide a structured summary.

TRANSCRIPT:
%s

Please provide your analysis in the following JSON format:
{
    "summary": "A concise 2-3 sentence summary of the main meeting purpose and outcomes",
    "topics_discussed": ["Topic 1", "Topic 2", "Topic 3"],
    "key_decisions": ["Decision 1", "Decision 2"],
    "action_items": [
        {
            "task": "Description of the task",
            "owner": "Person responsible",
            "deadline": "Due date if mentioned",
            "priority": "High/Medium/Low"
        }
    ],
    "next_steps": "What should happen next"
}

Focus on extracting actionable items, identifying who is responsible for what, and capturing any deadlines or important decisions made during the meeting.`, transcript)
}
