package models

// Partner represents a stakeholder holding a share of the project.
// Shares are informational: the system validates each share stays within
// 0-100 but does not enforce that shares across partners sum to 100.
type Partner struct {
	Base
	ProjectID   string  `gorm:"type:uuid;not null;index" json:"project_id"`
	Name        string  `gorm:"not null" json:"name"`
	Role        string  `json:"role"`
	Share       float64 `gorm:"not null" json:"share"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	JoinDate    string  `json:"join_date,omitempty"`
}
