package services

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
)

// dateFormat is the zero-padded YYYY/MM/DD shape every stored date must
// follow. Lexical range filtering on the ledger depends on it.
var dateFormat = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// validDate reports whether s is empty or a well-formed date string.
func validDate(s string) bool {
	return s == "" || dateFormat.MatchString(s)
}

// projectService handles the project aggregate and partner operations.
type projectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB) ProjectServicer {
	return &projectService{db: db}
}

// GetProject returns the project row without child collections.
func (s *projectService) GetProject() (*models.Project, error) {
	var project models.Project
	if err := s.db.Order("created_at").First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}

// GetSnapshot returns the fully loaded aggregate. Stages come back in
// position order and transactions newest-first, matching the display
// contract of the derived views.
func (s *projectService) GetSnapshot() (*models.Project, error) {
	project, err := s.GetProject()
	if err != nil {
		return nil, err
	}

	err = s.db.
		Preload("Partners", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Stages", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Reports", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Reports.Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Inventory", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("PurchaseRequests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(project, "id = ?", project.ID).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return project, nil
}

// AddPartner appends a partner to the project. Each share must stay
// within 0-100; the cumulative sum across partners is deliberately not
// enforced and is surfaced by reconciliation instead.
func (s *projectService) AddPartner(name, role string, share float64, phoneNumber, joinDate string) (*models.Partner, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "partner name is required")
	}
	if share < 0 || share > 100 {
		return nil, apperrors.ErrInvalidShare
	}
	if !validDate(joinDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "join date must be formatted YYYY/MM/DD")
	}

	project, err := s.GetProject()
	if err != nil {
		return nil, err
	}

	partner := &models.Partner{
		ProjectID:   project.ID,
		Name:        name,
		Role:        role,
		Share:       share,
		PhoneNumber: phoneNumber,
		JoinDate:    joinDate,
	}
	if err := s.db.Create(partner).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return partner, nil
}

// GetPartner returns a partner by ID.
func (s *projectService) GetPartner(partnerID string) (*models.Partner, error) {
	var partner models.Partner
	if err := s.db.First(&partner, "id = ?", partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartnerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &partner, nil
}

// GetPartners returns all partners in creation order.
func (s *projectService) GetPartners() ([]models.Partner, error) {
	var partners []models.Partner
	if err := s.db.Order("created_at").Find(&partners).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return partners, nil
}
