package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/assistant"
	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
	"sitedesk/internal/services"
)

// AssistantHandler exposes the project assistant.
type AssistantHandler struct {
	assistantService *assistant.Service
	projectService   services.ProjectServicer
	reportService    services.ReportServicer
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(
	assistantService *assistant.Service,
	projectService services.ProjectServicer,
	reportService services.ReportServicer,
) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		projectService:   projectService,
		reportService:    reportService,
	}
}

// TurnRequest is one prior exchange in the conversation history.
type TurnRequest struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

// QueryRequest represents an assistant question payload.
type QueryRequest struct {
	Query   string        `json:"query" binding:"required"`
	History []TurnRequest `json:"history" binding:"omitempty,dive"`
}

// Query handles a natural-language question about the project.
// @Summary     Ask the project assistant
// @Description Answers using the full current project snapshot as context. Upstream failures produce a fallback answer, not an error.
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Param       request body QueryRequest true "Question and optional history"
// @Success     200 {object} map[string]string
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Assistant not configured"
// @Router      /assistant/query [post]
func (h *AssistantHandler) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshot, err := h.projectService.GetSnapshot()
	if err != nil {
		respondWithError(c, err)
		return
	}

	history := make([]assistant.Turn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, assistant.Turn{Role: turn.Role, Text: turn.Text})
	}

	answer, err := h.assistantService.AnswerQuery(c.Request.Context(), req.Query, snapshot, history)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// ExtractDraftRequest represents a voice report extraction payload.
type ExtractDraftRequest struct {
	Audio    string `json:"audio" binding:"required"`
	MimeType string `json:"mime_type"`
}

// ExtractDraft handles turning a voice recording into an editable report
// draft. The draft is not persisted; it is returned for review and
// confirmed through ConfirmDraft.
// @Summary     Extract a report draft from audio
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Param       request body ExtractDraftRequest true "Base64 audio and MIME type"
// @Success     200 {object} assistant.ReportDraft
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Assistant unavailable"
// @Failure     503 {object} ErrorResponse "Assistant not configured"
// @Router      /assistant/report-draft [post]
func (h *AssistantHandler) ExtractDraft(c *gin.Context) {
	var req ExtractDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "audio must be base64 encoded"))
		return
	}

	draft, err := h.assistantService.ExtractReportFromAudio(c.Request.Context(), audio, req.MimeType)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ConfirmDraft handles committing a reviewed draft as a pending report.
// The draft passes the full draft validation gate and then goes through
// the normal report creation path.
// @Summary     Confirm a report draft
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Param       request body assistant.ReportDraft true "Reviewed draft"
// @Success     201 {object} models.SiteReport
// @Failure     400 {object} ErrorResponse "Draft incomplete or invalid"
// @Router      /assistant/report-draft/confirm [post]
func (h *AssistantHandler) ConfirmDraft(c *gin.Context) {
	var draft assistant.ReportDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := draft.Validate(); err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]services.ReportItemInput, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, services.ReportItemInput{
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	report, err := h.reportService.AddReport(draft.Title, draft.Description, draft.Amount, draft.Date, models.ReportStatusPending, items)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": report})
}
