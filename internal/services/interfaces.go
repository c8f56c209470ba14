package services

import (
	"sitedesk/internal/insights"
	"sitedesk/internal/models"
	"sitedesk/internal/pagination"
)

// ProjectServicer defines the contract for the project aggregate and its
// partners.
type ProjectServicer interface {
	// GetProject returns the project row without child collections.
	GetProject() (*models.Project, error)
	// GetSnapshot returns the fully loaded aggregate: partners, stages in
	// position order, transactions newest-first, reports, inventory, and
	// purchase requests.
	GetSnapshot() (*models.Project, error)
	AddPartner(name, role string, share float64, phoneNumber, joinDate string) (*models.Partner, error)
	GetPartner(partnerID string) (*models.Partner, error)
	GetPartners() ([]models.Partner, error)
}

// ReportItemInput is one line item of a report being created.
type ReportItemInput struct {
	Description string
	Unit        string
	Quantity    float64
	UnitPrice   int64
}

// TransactionServicer defines the contract for the project ledger.
type TransactionServicer interface {
	AddTransaction(date string, amount int64, transactionType models.TransactionType, description string, status models.TransactionStatus, partnerID *string) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter insights.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

// ReportServicer defines the contract for site reports.
type ReportServicer interface {
	AddReport(title, description string, amount int64, date string, status models.ReportStatus, items []ReportItemInput) (*models.SiteReport, error)
	GetReports(page pagination.PageRequest) (*pagination.PageResponse[models.SiteReport], error)
}

// InventoryServicer defines the contract for site stock.
type InventoryServicer interface {
	GetItems() ([]models.InventoryItem, error)
	AddItem(name string, category models.InventoryCategory, quantity float64, unit string, minQuantity float64, lastUpdated, location string) (*models.InventoryItem, error)
	ReceiveStock(itemID string, quantity float64, date string) (*models.InventoryItem, error)
	ConsumeStock(itemID string, quantity float64, date string) (*models.InventoryItem, error)
}

// RequestServicer defines the contract for the purchase-request workflow.
type RequestServicer interface {
	AddRequest(actor Role, requesterName, itemName string, quantity float64, unit string, urgency models.Urgency, description, date string) (*models.PurchaseRequest, error)
	UpdateRequestStatus(actor Role, requestID string, newStatus models.RequestStatus) (*models.PurchaseRequest, error)
	GetRequests(page pagination.PageRequest, status *models.RequestStatus) (*pagination.PageResponse[models.PurchaseRequest], error)
	PendingCount() (int64, error)
}

// StageServicer defines the contract for physical progress tracking.
type StageServicer interface {
	GetStages() ([]models.ProgressStage, error)
	UpdateStageProgress(stageID string, percentage int, startDate, endDate string) (*models.ProgressStage, error)
}
