package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
)

// stageService handles physical progress tracking.
type stageService struct {
	db *gorm.DB
}

// NewStageService creates a new StageServicer.
func NewStageService(db *gorm.DB) StageServicer {
	return &stageService{db: db}
}

// GetStages returns all stages in position order.
func (s *stageService) GetStages() ([]models.ProgressStage, error) {
	var stages []models.ProgressStage
	if err := s.db.Order("position").Find(&stages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stages, nil
}

// UpdateStageProgress sets a stage's completion percentage. Status is
// derived from the percentage, never set independently. Start and end
// dates are optional and only overwritten when provided.
func (s *stageService) UpdateStageProgress(stageID string, percentage int, startDate, endDate string) (*models.ProgressStage, error) {
	if percentage < 0 || percentage > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "percentage must be between 0 and 100")
	}
	if !validDate(startDate) || !validDate(endDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "dates must be formatted YYYY/MM/DD")
	}

	var stage models.ProgressStage
	if err := s.db.First(&stage, "id = ?", stageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"percentage": percentage,
		"status":     models.DeriveStageStatus(percentage),
	}
	if startDate != "" {
		updates["start_date"] = startDate
	}
	if endDate != "" {
		updates["end_date"] = endDate
	}

	if err := s.db.Model(&stage).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stage, nil
}
