package models

// ProjectStatus describes the overall phase of the construction project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusExcavation ProjectStatus = "excavation"
	ProjectStatusFoundation ProjectStatus = "foundation"
	ProjectStatusStructure  ProjectStatus = "structure"
	ProjectStatusWalls      ProjectStatus = "walls"
	ProjectStatusFinishing  ProjectStatus = "finishing"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project is the aggregate root for a single construction project.
// It exclusively owns all child collections; children have no lifecycle
// outside the project.
//
// TotalBudget and TotalProgress are entered manually and never recomputed
// from children. TotalSpent is only bumped when an expense transaction is
// added; reconciliation against the transaction history is advisory
// (see insights.Reconcile).
type Project struct {
	Base
	Title            string        `gorm:"not null" json:"title"`
	Address          string        `json:"address"`
	TotalBudget      int64         `gorm:"type:bigint;not null" json:"total_budget"`
	TotalSpent       int64         `gorm:"type:bigint;not null" json:"total_spent"`
	TotalProgress    int           `gorm:"not null" json:"total_progress"`
	Status           ProjectStatus `gorm:"not null" json:"status"`
	StartDate        string        `json:"start_date"`
	EstimatedEndDate string        `json:"estimated_end_date"`

	// Relationships
	Partners         []Partner         `gorm:"foreignKey:ProjectID" json:"partners,omitempty"`
	Stages           []ProgressStage   `gorm:"foreignKey:ProjectID" json:"stages,omitempty"`
	Transactions     []Transaction     `gorm:"foreignKey:ProjectID" json:"transactions,omitempty"`
	Reports          []SiteReport      `gorm:"foreignKey:ProjectID" json:"reports,omitempty"`
	Inventory        []InventoryItem   `gorm:"foreignKey:ProjectID" json:"inventory,omitempty"`
	PurchaseRequests []PurchaseRequest `gorm:"foreignKey:ProjectID" json:"purchase_requests,omitempty"`
}
