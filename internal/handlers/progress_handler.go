package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/insights"
	"sitedesk/internal/services"
)

// ProgressHandler serves physical progress tracking.
type ProgressHandler struct {
	stageService services.StageServicer
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(stageService services.StageServicer) *ProgressHandler {
	return &ProgressHandler{stageService: stageService}
}

// GetStages handles the flat ordered stage list.
// @Summary     Get progress stages
// @Tags        progress
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /progress/stages [get]
func (h *ProgressHandler) GetStages(c *gin.Context) {
	stages, err := h.stageService.GetStages()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

// GetBuckets handles the bucketed progress summary.
// @Summary     Get progress buckets
// @Description Stages grouped by the canonical keyword table, with per-bucket progress and the current phase.
// @Tags        progress
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /progress/buckets [get]
func (h *ProgressHandler) GetBuckets(c *gin.Context) {
	stages, err := h.stageService.GetStages()
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets := insights.GroupStages(stages, insights.DefaultStageBuckets)
	c.JSON(http.StatusOK, gin.H{
		"buckets":        buckets,
		"current_bucket": insights.CurrentBucket(buckets),
	})
}

// UpdateStageRequest represents a stage progress update payload.
type UpdateStageRequest struct {
	Percentage *int   `json:"percentage" binding:"required,min=0,max=100"`
	StartDate  string `json:"start_date" binding:"omitempty,project_date"`
	EndDate    string `json:"end_date" binding:"omitempty,project_date"`
}

// UpdateStage handles setting a stage's completion percentage. Status is
// derived from the percentage.
// @Summary     Update stage progress
// @Tags        progress
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Stage ID"
// @Param       request body UpdateStageRequest true "Progress update"
// @Success     200 {object} models.ProgressStage
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Stage not found"
// @Router      /progress/stages/{id} [patch]
func (h *ProgressHandler) UpdateStage(c *gin.Context) {
	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stage, err := h.stageService.UpdateStageProgress(c.Param("id"), *req.Percentage, req.StartDate, req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": stage})
}
