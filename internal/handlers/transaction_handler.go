package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/insights"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
	"sitedesk/internal/services"
)

// TransactionHandler serves the project ledger.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	projectService     services.ProjectServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, projectService services.ProjectServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, projectService: projectService}
}

// AddTransactionRequest represents the request payload for recording a transaction.
type AddTransactionRequest struct {
	Date        string  `json:"date" binding:"required,project_date"`
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,transaction_type"`
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Status      string  `json:"status" binding:"required,transaction_status"`
	PartnerID   *string `json:"partner_id"`
}

// AddTransaction handles recording a ledger entry.
// @Summary     Record a transaction
// @Description Append an immutable deposit, expense, or debt entry. Expenses bump the project's total spent.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body AddTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Partner not found"
// @Router      /transactions [post]
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.AddTransaction(
		req.Date,
		req.Amount,
		models.TransactionType(req.Type),
		req.Description,
		models.TransactionStatus(req.Status),
		req.PartnerID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles the filtered ledger view.
// @Summary     Get transactions
// @Description Paginated ledger, newest first, filterable by type and inclusive YYYY/MM/DD date range.
// @Tags        transactions
// @Produce     json
// @Param       type      query string false "Filter by type (deposit/expense/debt)"
// @Param       from      query string false "Inclusive lower date bound (YYYY/MM/DD)"
// @Param       to        query string false "Inclusive upper date bound (YYYY/MM/DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter insights.TransactionFilter
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		switch t {
		case models.TransactionTypeDeposit, models.TransactionTypeExpense, models.TransactionTypeDebt:
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be deposit, expense, or debt"))
			return
		}
		filter.Type = &t
	}
	filter.FromDate = c.Query("from")
	filter.ToDate = c.Query("to")

	result, err := h.transactionService.GetTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFinancialSummary handles the ledger rollup plus budget allocation.
// @Summary     Get financial summary
// @Tags        transactions
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /financials/summary [get]
func (h *TransactionHandler) GetFinancialSummary(c *gin.Context) {
	snapshot, err := h.projectService.GetSnapshot()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":    insights.Summarize(snapshot.Transactions),
		"allocation": insights.Allocate(snapshot),
	})
}
