package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
)

// legalTransitions is the purchase-request state machine. Anything not
// listed here is rejected; rejected and purchased are terminal.
var legalTransitions = map[models.RequestStatus][]models.RequestStatus{
	models.RequestStatusPending:  {models.RequestStatusApproved, models.RequestStatusRejected},
	models.RequestStatusApproved: {models.RequestStatusPurchased},
}

// transitionAllowed reports whether from -> to is a legal transition.
func transitionAllowed(from, to models.RequestStatus) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// requestService handles the purchase-request workflow.
type requestService struct {
	db             *gorm.DB
	projectService ProjectServicer
	policy         ApprovalPolicy
}

// NewRequestService creates a new RequestServicer with the given
// approval policy.
func NewRequestService(db *gorm.DB, projectService ProjectServicer, policy ApprovalPolicy) RequestServicer {
	return &requestService{
		db:             db,
		projectService: projectService,
		policy:         policy,
	}
}

// AddRequest creates a purchase request. Requests always start pending;
// the initial status is not caller-controlled.
func (s *requestService) AddRequest(
	actor Role,
	requesterName, itemName string,
	quantity float64,
	unit string,
	urgency models.Urgency,
	description, date string,
) (*models.PurchaseRequest, error) {
	if !s.policy.CanCreate(actor) {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "only requesters may create purchase requests")
	}
	if requesterName == "" || itemName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "requester name and item name are required")
	}
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	switch urgency {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "urgency must be low, medium, or high")
	}
	if date == "" || !validDate(date) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted YYYY/MM/DD")
	}

	project, err := s.projectService.GetProject()
	if err != nil {
		return nil, err
	}

	request := &models.PurchaseRequest{
		ProjectID:     project.ID,
		RequesterName: requesterName,
		ItemName:      itemName,
		Quantity:      quantity,
		Unit:          unit,
		Urgency:       urgency,
		Description:   description,
		Date:          date,
		Status:        models.RequestStatusPending,
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return request, nil
}

// UpdateRequestStatus transitions a request through the workflow. An
// unknown ID is an explicit not-found error, and an illegal transition
// leaves the request unchanged.
func (s *requestService) UpdateRequestStatus(actor Role, requestID string, newStatus models.RequestStatus) (*models.PurchaseRequest, error) {
	if !s.policy.CanTransition(actor) {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "only approvers may change request status")
	}
	switch newStatus {
	case models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusPurchased, models.RequestStatusRejected:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown request status")
	}

	var request models.PurchaseRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRequestNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if !transitionAllowed(request.Status, newStatus) {
			return apperrors.WithMessage(apperrors.ErrIllegalTransition,
				"cannot move purchase request from "+string(request.Status)+" to "+string(newStatus))
		}

		if err := tx.Model(&request).Update("status", newStatus).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetRequests returns a paginated list of requests, newest first, with an
// optional status filter.
func (s *requestService) GetRequests(page pagination.PageRequest, status *models.RequestStatus) (*pagination.PageResponse[models.PurchaseRequest], error) {
	page.Defaults()

	base := s.db.Model(&models.PurchaseRequest{})
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var requests []models.PurchaseRequest
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&requests).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(requests, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// PendingCount returns the number of requests awaiting review; it feeds
// the navigation badge.
func (s *requestService) PendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.PurchaseRequest{}).
		Where("status = ?", models.RequestStatusPending).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}
