// Package assistant is the gateway to the external generative-AI service.
// It formats project snapshots and conversation history into Gemini
// generateContent calls and shields the rest of the system from upstream
// failures.
package assistant

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "sitedesk/internal/errors"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// One retry on transport or upstream 5xx failure.
	geminiMaxAttempts = 2
	geminiRetryDelay  = 1 * time.Second
)

// Turn is one prior conversation turn. Role is "user" or "model".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Generator is the narrow contract the assistant service needs from the
// upstream model API.
type Generator interface {
	// GenerateText sends a system instruction plus ordered turns and
	// returns the model's text reply.
	GenerateText(ctx context.Context, systemInstruction string, turns []Turn) (string, error)

	// GenerateStructured sends inline audio plus an extraction prompt and
	// a target JSON schema, and returns the raw JSON text the model
	// produced.
	GenerateStructured(ctx context.Context, prompt string, audio []byte, mimeType string, schema json.RawMessage) (string, error)
}

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiClient creates a client for the Gemini generateContent API.
// The timeout bounds each individual HTTP attempt.
func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateText sends a system instruction plus ordered turns and returns
// the model's text reply.
func (c *GeminiClient) GenerateText(ctx context.Context, systemInstruction string, turns []Turn) (string, error) {
	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
	}
	for _, turn := range turns {
		role := "user"
		if turn.Role == "model" {
			role = "model"
		}
		req.Contents = append(req.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	return c.generate(ctx, &req)
}

// GenerateStructured sends inline audio plus an extraction prompt and a
// target JSON schema, requesting a JSON response.
func (c *GeminiClient) GenerateStructured(ctx context.Context, prompt string, audio []byte, mimeType string, schema json.RawMessage) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(audio),
				}},
				{Text: prompt},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}
	return c.generate(ctx, &req)
}

// generate performs the HTTP call with a single retry on transport
// failures and upstream 5xx responses. Client errors are never retried.
func (c *GeminiClient) generate(ctx context.Context, req *geminiRequest) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.ErrAssistantNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for attempt := 0; attempt < geminiMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(geminiRetryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(httpReq)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("upstream status %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			var apiErr geminiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, apiErr.Error.Message)
			}
			return "", fmt.Errorf("upstream status %d", resp.StatusCode)
		}

		var result geminiResponse
		if err := json.Unmarshal(respBody, &result); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if len(result.Candidates) == 0 {
			return "", fmt.Errorf("empty response from model")
		}

		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		return text.String(), nil
	}

	return "", apperrors.Wrap(apperrors.ErrAssistantUnavailable, lastErr)
}
