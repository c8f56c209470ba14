package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/insights"
	"sitedesk/internal/services"
)

// ProjectHandler serves the project aggregate, partners, dashboard
// summaries, and reconciliation checks.
type ProjectHandler struct {
	projectService services.ProjectServicer
	requestService services.RequestServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService services.ProjectServicer, requestService services.RequestServicer) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, requestService: requestService}
}

// GetProject handles fetching the project summary row.
// @Summary     Get project
// @Tags        project
// @Produce     json
// @Success     200 {object} models.Project
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /project [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProject()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// GetSnapshot handles fetching the fully loaded aggregate.
// @Summary     Get project snapshot
// @Tags        project
// @Produce     json
// @Success     200 {object} models.Project
// @Router      /project/snapshot [get]
func (h *ProjectHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.projectService.GetSnapshot()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": snapshot})
}

// GetDashboard handles the aggregated dashboard view: bucketed progress,
// budget allocation, financial rollups, low-stock and pending-request
// counts.
// @Summary     Get dashboard
// @Tags        project
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /project/dashboard [get]
func (h *ProjectHandler) GetDashboard(c *gin.Context) {
	snapshot, err := h.projectService.GetSnapshot()
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets := insights.GroupStages(snapshot.Stages, insights.DefaultStageBuckets)
	pendingRequests, err := h.requestService.PendingCount()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":          snapshot,
		"allocation":       insights.Allocate(snapshot),
		"financial":        insights.Summarize(snapshot.Transactions),
		"buckets":          buckets,
		"current_bucket":   insights.CurrentBucket(buckets),
		"low_stock_count":  len(insights.LowStock(snapshot.Inventory)),
		"pending_requests": pendingRequests,
	})
}

// GetReconciliation handles the advisory reconciliation check.
// @Summary     Reconcile project data
// @Description Cross-checks aggregate totals, partner shares, stage statuses, and report subtotals. Findings are advisory and never auto-corrected.
// @Tags        project
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /project/reconciliation [get]
func (h *ProjectHandler) GetReconciliation(c *gin.Context) {
	snapshot, err := h.projectService.GetSnapshot()
	if err != nil {
		respondWithError(c, err)
		return
	}

	findings := insights.Reconcile(snapshot)
	if findings == nil {
		findings = []insights.Discrepancy{}
	}
	c.JSON(http.StatusOK, gin.H{"discrepancies": findings})
}

// AddPartnerRequest represents the request payload for adding a partner.
type AddPartnerRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Role        string  `json:"role" binding:"max=100"`
	Share       float64 `json:"share" binding:"min=0,max=100"`
	PhoneNumber string  `json:"phone_number" binding:"max=30"`
	JoinDate    string  `json:"join_date" binding:"omitempty,project_date"`
}

// AddPartner handles appending a partner to the project.
// @Summary     Add a partner
// @Tags        partners
// @Accept      json
// @Produce     json
// @Param       request body AddPartnerRequest true "Partner details"
// @Success     201 {object} models.Partner
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /partners [post]
func (h *ProjectHandler) AddPartner(c *gin.Context) {
	var req AddPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	partner, err := h.projectService.AddPartner(req.Name, req.Role, req.Share, req.PhoneNumber, req.JoinDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"partner": partner})
}

// GetPartners handles listing partners.
// @Summary     Get partners
// @Tags        partners
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /partners [get]
func (h *ProjectHandler) GetPartners(c *gin.Context) {
	partners, err := h.projectService.GetPartners()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetPartnerSummary handles the per-partner financial rollup.
// @Summary     Get partner financial summary
// @Tags        partners
// @Produce     json
// @Param       id path string true "Partner ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} ErrorResponse "Partner not found"
// @Router      /partners/{id}/summary [get]
func (h *ProjectHandler) GetPartnerSummary(c *gin.Context) {
	partner, err := h.projectService.GetPartner(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.projectService.GetSnapshot()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partner": partner,
		"summary": insights.SummarizeForPartner(snapshot.Transactions, partner.ID),
	})
}
