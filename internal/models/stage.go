package models

// StageStatus represents the execution state of a progress stage.
type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in-progress"
	StageStatusCompleted  StageStatus = "completed"
)

// ProgressStage is one unit of construction work with a completion
// percentage. Position fixes the display order of the flat stage list,
// which is significant for bucket grouping and current-phase inference.
//
// Status is strictly derived from Percentage (see DeriveStageStatus);
// it is stored denormalized for query convenience but never diverges.
type ProgressStage struct {
	Base
	ProjectID  string      `gorm:"type:uuid;not null;index" json:"project_id"`
	Position   int         `gorm:"not null" json:"position"`
	Name       string      `gorm:"not null" json:"name"`
	Percentage int         `gorm:"not null" json:"percentage"`
	Status     StageStatus `gorm:"not null" json:"status"`
	StartDate  string      `json:"start_date,omitempty"`
	EndDate    string      `json:"end_date,omitempty"`
	Images     []string    `gorm:"serializer:json" json:"images,omitempty"`
}

// DeriveStageStatus maps a completion percentage onto a stage status.
func DeriveStageStatus(percentage int) StageStatus {
	switch {
	case percentage >= 100:
		return StageStatusCompleted
	case percentage > 0:
		return StageStatusInProgress
	default:
		return StageStatusPending
	}
}
