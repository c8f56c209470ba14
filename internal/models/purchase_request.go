package models

// Urgency is a priority tag on a purchase request, not a deadline.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// RequestStatus represents the workflow state of a purchase request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusPurchased RequestStatus = "purchased"
	RequestStatusRejected  RequestStatus = "rejected"
)

// PurchaseRequest is a request from site staff to buy materials.
// Requests are always created pending; the only legal transitions are
// pending->approved, pending->rejected, and approved->purchased.
// Rejected and purchased are terminal.
type PurchaseRequest struct {
	Base
	ProjectID     string        `gorm:"type:uuid;not null;index" json:"project_id"`
	RequesterName string        `gorm:"not null" json:"requester_name"`
	ItemName      string        `gorm:"not null" json:"item_name"`
	Quantity      float64       `gorm:"not null" json:"quantity"`
	Unit          string        `json:"unit"`
	Urgency       Urgency       `gorm:"not null" json:"urgency"`
	Description   string        `json:"description"`
	Date          string        `gorm:"not null" json:"date"`
	Status        RequestStatus `gorm:"not null" json:"status"`
}
