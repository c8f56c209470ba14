package services

import (
	"gorm.io/gorm"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/insights"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
)

// transactionService handles the project ledger.
type transactionService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, projectService ProjectServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		projectService: projectService,
	}
}

// AddTransaction appends a transaction to the ledger. Transactions are
// immutable once created. An expense also bumps the project's TotalSpent
// inside the same database transaction; no other aggregate field is
// touched.
func (s *transactionService) AddTransaction(
	date string,
	amount int64,
	transactionType models.TransactionType,
	description string,
	status models.TransactionStatus,
	partnerID *string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.ErrNonPositiveAmount
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	switch transactionType {
	case models.TransactionTypeDeposit, models.TransactionTypeExpense, models.TransactionTypeDebt:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	switch status {
	case models.TransactionStatusPaid, models.TransactionStatusPending, models.TransactionStatusOverdue:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be paid, pending, or overdue")
	}
	if date == "" || !validDate(date) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted YYYY/MM/DD")
	}

	project, err := s.projectService.GetProject()
	if err != nil {
		return nil, err
	}

	if partnerID != nil {
		if _, err := s.projectService.GetPartner(*partnerID); err != nil {
			return nil, err
		}
	}

	transaction := &models.Transaction{
		ProjectID:   project.ID,
		Date:        date,
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		Status:      status,
		PartnerID:   partnerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if transactionType == models.TransactionTypeExpense {
			err := tx.Model(&models.Project{}).
				Where("id = ?", project.ID).
				UpdateColumn("total_spent", gorm.Expr("total_spent + ?", amount)).Error
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransactions returns a paginated, filtered view of the ledger,
// newest first. Date bounds are inclusive and compared lexically against
// the stored YYYY/MM/DD strings.
func (s *transactionService) GetTransactions(page pagination.PageRequest, filter insights.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	if !validDate(filter.FromDate) || !validDate(filter.ToDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date filters must be formatted YYYY/MM/DD")
	}

	base := s.db.Model(&models.Transaction{})
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.FromDate != "" {
		base = base.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		base = base.Where("date <= ?", filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
