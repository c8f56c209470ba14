package models

// ReportStatus represents the review state of a site report.
// Status is set once at creation; no transition operation exists.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

// SiteReport is a progress statement submitted from the site.
// Amount is entered independently and may diverge from the sum of item
// subtotals; this is a deliberate manual override, flagged by the
// reconciliation check rather than corrected.
type SiteReport struct {
	Base
	ProjectID   string       `gorm:"type:uuid;not null;index" json:"project_id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	Amount      int64        `gorm:"type:bigint;not null" json:"amount"`
	Date        string       `gorm:"not null" json:"date"`
	Status      ReportStatus `gorm:"not null" json:"status"`

	// Relationships
	Items []ReportItem `gorm:"foreignKey:ReportID" json:"items"`
}

// ReportItem is one line item of a site report.
type ReportItem struct {
	Base
	ReportID    string  `gorm:"type:uuid;not null;index" json:"report_id"`
	Position    int     `gorm:"not null" json:"position"`
	Description string  `gorm:"not null" json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	UnitPrice   int64   `gorm:"type:bigint;not null" json:"unit_price"`
}

// Subtotal returns the line total for this item.
func (i *ReportItem) Subtotal() int64 {
	return int64(i.Quantity * float64(i.UnitPrice))
}

// ItemsSubtotal returns the sum of all line item subtotals.
func (r *SiteReport) ItemsSubtotal() int64 {
	var sum int64
	for i := range r.Items {
		sum += r.Items[i].Subtotal()
	}
	return sum
}
