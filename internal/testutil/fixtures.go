package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"sitedesk/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestProject creates a project with the budget figures used across
// the service tests: a 15 billion toman budget with 4.85 billion spent.
func CreateTestProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:            fmt.Sprintf("Test Project %d", nextID()),
		Address:          "12 Site Access Road",
		TotalBudget:      15_000_000_000,
		TotalSpent:       4_850_000_000,
		TotalProgress:    45,
		Status:           models.ProjectStatusStructure,
		StartDate:        "2024/03/20",
		EstimatedEndDate: "2026/03/20",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestPartner creates a partner with the given share percentage.
func CreateTestPartner(t *testing.T, db *gorm.DB, projectID string, share float64) *models.Partner {
	t.Helper()

	partner := &models.Partner{
		ProjectID: projectID,
		Name:      fmt.Sprintf("Test Partner %d", nextID()),
		Role:      "investor",
		Share:     share,
		JoinDate:  "2024/03/20",
	}
	if err := db.Create(partner).Error; err != nil {
		t.Fatalf("failed to create test partner: %v", err)
	}
	return partner
}

// CreateTestStage creates a progress stage at the given position with the
// given completion percentage. Status is derived from the percentage.
func CreateTestStage(t *testing.T, db *gorm.DB, projectID string, position int, name string, percentage int) *models.ProgressStage {
	t.Helper()

	stage := &models.ProgressStage{
		ProjectID:  projectID,
		Position:   position,
		Name:       name,
		Percentage: percentage,
		Status:     models.DeriveStageStatus(percentage),
	}
	if err := db.Create(stage).Error; err != nil {
		t.Fatalf("failed to create test stage: %v", err)
	}
	return stage
}

// CreateTestTransaction creates a transaction of the given type and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, projectID string, txType models.TransactionType, amount int64, status models.TransactionStatus) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		ProjectID:   projectID,
		Date:        "2024/06/01",
		Amount:      amount,
		Type:        txType,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Status:      status,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestInventoryItem creates an inventory item with the given quantity
// and reorder threshold.
func CreateTestInventoryItem(t *testing.T, db *gorm.DB, projectID string, quantity, minQuantity float64) *models.InventoryItem {
	t.Helper()

	item := &models.InventoryItem{
		ProjectID:   projectID,
		Name:        fmt.Sprintf("Test Item %d", nextID()),
		Category:    models.InventoryCategoryMaterials,
		Quantity:    quantity,
		Unit:        "bag",
		MinQuantity: minQuantity,
		LastUpdated: "2024/06/01",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test inventory item: %v", err)
	}
	return item
}

// CreateTestRequest creates a purchase request in the given status.
func CreateTestRequest(t *testing.T, db *gorm.DB, projectID string, status models.RequestStatus) *models.PurchaseRequest {
	t.Helper()

	request := &models.PurchaseRequest{
		ProjectID:     projectID,
		RequesterName: "Site Supervisor",
		ItemName:      fmt.Sprintf("Test Material %d", nextID()),
		Quantity:      10,
		Unit:          "bag",
		Urgency:       models.UrgencyMedium,
		Description:   "restock",
		Date:          "2024/06/01",
		Status:        status,
	}
	if err := db.Create(request).Error; err != nil {
		t.Fatalf("failed to create test request: %v", err)
	}
	return request
}

// CreateTestReport creates a site report with a single line item.
func CreateTestReport(t *testing.T, db *gorm.DB, projectID string, amount int64) *models.SiteReport {
	t.Helper()

	report := &models.SiteReport{
		ProjectID:   projectID,
		Title:       fmt.Sprintf("Test Report %d", nextID()),
		Description: "daily site report",
		Amount:      amount,
		Date:        "2024/06/01",
		Status:      models.ReportStatusApproved,
		Items: []models.ReportItem{
			{
				Position:    0,
				Description: "cement",
				Unit:        "bag",
				Quantity:    10,
				UnitPrice:   amount / 10,
			},
		},
	}
	if err := db.Create(report).Error; err != nil {
		t.Fatalf("failed to create test report: %v", err)
	}
	return report
}
