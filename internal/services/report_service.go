package services

import (
	"gorm.io/gorm"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
)

// reportService handles site reports.
type reportService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, projectService ProjectServicer) ReportServicer {
	return &reportService{
		db:             db,
		projectService: projectService,
	}
}

// AddReport appends a site report with its line items. The report amount
// is taken as entered and is allowed to diverge from the item subtotal;
// reconciliation flags the difference without correcting it. No aggregate
// field is recomputed.
func (s *reportService) AddReport(
	title, description string,
	amount int64,
	date string,
	status models.ReportStatus,
	items []ReportItemInput,
) (*models.SiteReport, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	switch status {
	case models.ReportStatusPending, models.ReportStatusApproved, models.ReportStatusRejected:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be pending, approved, or rejected")
	}
	if date == "" || !validDate(date) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted YYYY/MM/DD")
	}
	for _, item := range items {
		if item.Description == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "every line item needs a description")
		}
		if item.Quantity < 0 || item.UnitPrice < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "line item quantity and unit price must not be negative")
		}
	}

	project, err := s.projectService.GetProject()
	if err != nil {
		return nil, err
	}

	report := &models.SiteReport{
		ProjectID:   project.ID,
		Title:       title,
		Description: description,
		Amount:      amount,
		Date:        date,
		Status:      status,
	}
	for i, item := range items {
		report.Items = append(report.Items, models.ReportItem{
			Position:    i,
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if err := s.db.Create(report).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return report, nil
}

// GetReports returns a paginated list of reports, newest first, with
// line items in order.
func (s *reportService) GetReports(page pagination.PageRequest) (*pagination.PageResponse[models.SiteReport], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.SiteReport{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var reports []models.SiteReport
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&reports).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(reports, page.Page, page.PageSize, totalItems)
	return &result, nil
}
