package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
	"sitedesk/internal/services"
)

// RequestHandler serves the purchase-request workflow.
type RequestHandler struct {
	requestService services.RequestServicer
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requestService services.RequestServicer) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// AddRequestRequest represents the payload for creating a purchase
// request. Requests always start pending; a status other than pending in
// the payload is rejected.
type AddRequestRequest struct {
	RequesterName string  `json:"requester_name" binding:"required,min=1,max=200"`
	ItemName      string  `json:"item_name" binding:"required,min=1,max=200"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	Unit          string  `json:"unit" binding:"max=50"`
	Urgency       string  `json:"urgency" binding:"required,urgency"`
	Description   string  `json:"description" binding:"max=1000"`
	Date          string  `json:"date" binding:"required,project_date"`
	Status        string  `json:"status" binding:"omitempty"`
}

// AddRequest handles creating a purchase request.
// @Summary     Create a purchase request
// @Tags        purchase-requests
// @Accept      json
// @Produce     json
// @Param       X-Actor-Role header string              false "Acting role (requester/approver)"
// @Param       request      body   AddRequestRequest   true  "Request details"
// @Success     201 {object} models.PurchaseRequest
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Role may not create requests"
// @Router      /purchase-requests [post]
func (h *RequestHandler) AddRequest(c *gin.Context) {
	var req AddRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Status != "" && req.Status != string(models.RequestStatusPending) {
		respondWithError(c, apperrors.ErrInvalidInitialStatus)
		return
	}

	request, err := h.requestService.AddRequest(
		actorRole(c),
		req.RequesterName,
		req.ItemName,
		req.Quantity,
		req.Unit,
		models.Urgency(req.Urgency),
		req.Description,
		req.Date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// UpdateRequestStatusRequest represents a workflow transition payload.
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,request_status"`
}

// UpdateRequestStatus handles a workflow transition.
// @Summary     Transition a purchase request
// @Description Legal transitions: pending->approved, pending->rejected, approved->purchased. Everything else is rejected.
// @Tags        purchase-requests
// @Accept      json
// @Produce     json
// @Param       X-Actor-Role header string                     false "Acting role (requester/approver)"
// @Param       id           path   string                     true  "Request ID"
// @Param       request      body   UpdateRequestStatusRequest true  "Target status"
// @Success     200 {object} models.PurchaseRequest
// @Failure     400 {object} ErrorResponse "Illegal transition"
// @Failure     403 {object} ErrorResponse "Role may not transition requests"
// @Failure     404 {object} ErrorResponse "Request not found"
// @Router      /purchase-requests/{id}/status [patch]
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	request, err := h.requestService.UpdateRequestStatus(actorRole(c), c.Param("id"), models.RequestStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": request})
}

// GetRequests handles listing purchase requests.
// @Summary     Get purchase requests
// @Tags        purchase-requests
// @Produce     json
// @Param       status    query string false "Filter by status"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PurchaseRequest]
// @Router      /purchase-requests [get]
func (h *RequestHandler) GetRequests(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.RequestStatus
	if v := c.Query("status"); v != "" {
		s := models.RequestStatus(v)
		switch s {
		case models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusPurchased, models.RequestStatusRejected:
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be pending, approved, purchased, or rejected"))
			return
		}
		status = &s
	}

	result, err := h.requestService.GetRequests(page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPendingCount handles the navigation badge count.
// @Summary     Count pending purchase requests
// @Tags        purchase-requests
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /purchase-requests/pending-count [get]
func (h *RequestHandler) GetPendingCount(c *gin.Context) {
	count, err := h.requestService.PendingCount()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": count})
}
