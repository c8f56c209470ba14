package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/logger"
	"sitedesk/internal/models"
)

// FallbackMessage is returned verbatim when the upstream model cannot be
// reached. It is a user-facing reply, not an error.
const FallbackMessage = "The assistant could not be reached. Please check your connection and API key, then try again."

// systemInstruction fixes the assistant's persona across all chats.
const systemInstruction = "You are an experienced consulting engineer and construction project management assistant. Your tone is respectful and professional."

// contextPreamble frames the serialized project snapshot for the model.
const contextPreamble = `You are an intelligent construction-project management assistant.
The following project data is available to you:
%s

Your job is to answer questions from shareholders and partners about project status, finances, physical progress, and outstanding debt.
Answers must be formal and precise. If the user asks about something not present in the data, say that no such information has been recorded.
State amounts in tomans with thousands separators.`

// extractionPrompt asks the model to turn a recorded site update into a
// structured report draft.
const extractionPrompt = `Listen to this audio recording made by the project manager. It is a new progress statement or site report.
Extract the following and return it as JSON:
- title: a short title for the report (for example: cement purchase, worker wages)
- description: a full description of the work performed
- amount: the total amount in tomans (a number). Use 0 if not mentioned.
- date: the date mentioned, formatted YYYY/MM/DD. Assume today if not mentioned.
- items: an array of line items (description, unit, quantity, unit_price) if the recording gives details.`

// reportSchema is the target shape for structured extraction.
var reportSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"title": {"type": "STRING"},
		"description": {"type": "STRING"},
		"amount": {"type": "NUMBER"},
		"date": {"type": "STRING"},
		"items": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"description": {"type": "STRING"},
					"unit": {"type": "STRING"},
					"quantity": {"type": "NUMBER"},
					"unit_price": {"type": "NUMBER"}
				}
			}
		}
	}
}`)

// Service answers project questions and extracts report drafts by
// delegating reasoning to the upstream model.
type Service struct {
	generator Generator
}

// NewService creates an assistant service on top of a Generator.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// AnswerQuery serializes the project snapshot plus the conversation
// history and returns the model's reply verbatim. A missing API key is a
// configuration error; any other upstream failure resolves to
// FallbackMessage so the chat never crashes. Project state is never
// touched.
func (s *Service) AnswerQuery(ctx context.Context, query string, snapshot *models.Project, history []Turn) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	turns := make([]Turn, 0, len(history)+2)
	turns = append(turns, Turn{Role: "user", Text: fmt.Sprintf(contextPreamble, data)})
	for _, h := range history {
		role := "user"
		if h.Role == "model" {
			role = "model"
		}
		turns = append(turns, Turn{Role: role, Text: h.Text})
	}
	turns = append(turns, Turn{Role: "user", Text: query})

	reply, err := s.generator.GenerateText(ctx, systemInstruction, turns)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrAssistantNotConfigured.Code {
			return "", err
		}
		logger.Get().Warnw("assistant query failed", "error", err.Error())
		return FallbackMessage, nil
	}
	if reply == "" {
		return FallbackMessage, nil
	}
	return reply, nil
}

// ExtractReportFromAudio sends a recorded utterance for structured
// extraction and returns a report draft. Malformed or missing fields in
// the model output are defaulted rather than surfaced as parse errors;
// the caller must treat the result as a draft requiring confirmation.
func (s *Service) ExtractReportFromAudio(ctx context.Context, audio []byte, mimeType string) (*ReportDraft, error) {
	if len(audio) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "audio payload is empty")
	}
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	raw, err := s.generator.GenerateStructured(ctx, extractionPrompt, audio, mimeType, reportSchema)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrAssistantUnavailable, err)
	}

	var draft ReportDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		logger.Get().Warnw("assistant returned malformed draft JSON", "error", err.Error())
		// Fall through with a zero draft; defaults make it safe.
	}
	draft.applyDefaults()
	return &draft, nil
}
