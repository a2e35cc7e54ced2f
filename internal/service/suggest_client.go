package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"timesheet-backend/internal/config"
	"timesheet-backend/internal/logger"
)

// suggestSystemPrompt instructs the model to answer with strict JSON only.
// The answer is still treated as untrusted and re-filtered by the
// SuggestionService.
const suggestSystemPrompt = `You are a timesheet assistant. The user describes hours to log in natural language.
Answer with a single JSON object of the form
{"days":[{"date":"YYYY-MM-DD","entries":[{"type":"work|sick|time_off","hours":number}]}]}
Only use dates from the allowed_dates list. Do not add any text outside the JSON object.`

// HTTPSuggester calls an OpenAI-compatible chat-completions endpoint to turn
// a command plus week context into day suggestions.
type HTTPSuggester struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewHTTPSuggester creates a new HTTP-backed suggester
func NewHTTPSuggester(cfg *config.Config) *HTTPSuggester {
	timeout := time.Duration(cfg.SuggestTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSuggester{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type suggestionPayload struct {
	Days []DaySuggestion `json:"days"`
}

// Suggest sends the command and week context upstream and parses the JSON
// suggestion list out of the model's answer.
func (s *HTTPSuggester) Suggest(ctx context.Context, command string, week WeekContext) ([]DaySuggestion, error) {
	if s.cfg.SuggestBaseURL == "" || s.cfg.SuggestAPIKey == "" {
		return nil, ErrSuggesterNotConfigured
	}

	weekJSON, err := json.Marshal(week)
	if err != nil {
		return nil, fmt.Errorf("marshal week context: %w", err)
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: s.cfg.SuggestModel,
		Messages: []chatMessage{
			{Role: "system", Content: suggestSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Command: %s\nWeek context: %s", command, weekJSON)},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(s.cfg.SuggestBaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.SuggestAPIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call suggestion service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read suggestion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.New().WithField("status", resp.StatusCode).Warn("suggestion service returned non-OK status")
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("decode suggestion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("suggestion response has no choices")
	}

	content := completion.Choices[0].Message.Content
	// Models occasionally wrap the JSON in a fenced block despite the prompt.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return nil, fmt.Errorf("parse suggestion payload: %w", err)
	}
	return payload.Days, nil
}
