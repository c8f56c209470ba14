package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
	"sitedesk/internal/services"
)

// ReportHandler serves site reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportItemRequest is one line item of a report payload.
type ReportItemRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=300"`
	Unit        string  `json:"unit" binding:"max=50"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	UnitPrice   int64   `json:"unit_price" binding:"min=0"`
}

// AddReportRequest represents the request payload for submitting a report.
// Amount is entered independently of the item subtotal; divergence is
// flagged by reconciliation, not rejected.
type AddReportRequest struct {
	Title       string              `json:"title" binding:"required,min=1,max=200"`
	Description string              `json:"description" binding:"max=2000"`
	Amount      int64               `json:"amount" binding:"min=0"`
	Date        string              `json:"date" binding:"required,project_date"`
	Status      string              `json:"status" binding:"omitempty,report_status"`
	Items       []ReportItemRequest `json:"items" binding:"dive"`
}

// AddReport handles submitting a site report.
// @Summary     Submit a site report
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body AddReportRequest true "Report details"
// @Success     201 {object} models.SiteReport
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports [post]
func (h *ReportHandler) AddReport(c *gin.Context) {
	var req AddReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	status := models.ReportStatus(req.Status)
	if req.Status == "" {
		status = models.ReportStatusPending
	}

	items := make([]services.ReportItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.ReportItemInput{
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	report, err := h.reportService.AddReport(req.Title, req.Description, req.Amount, req.Date, status, items)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// GetReports handles listing reports, newest first.
// @Summary     Get site reports
// @Tags        reports
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SiteReport]
// @Router      /reports [get]
func (h *ReportHandler) GetReports(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.reportService.GetReports(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
