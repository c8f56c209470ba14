// Package seed loads a demo construction project so the dashboard has
// data to show on a fresh install. Seeding is idempotent: if any project
// already exists, nothing is written.
package seed

import (
	"sitedesk/internal/logger"
	"sitedesk/internal/models"

	"gorm.io/gorm"
)

// stageSeed is one row of the demo stage plan.
type stageSeed struct {
	name       string
	percentage int
}

// demoStages mirrors a six-storey residential build in execution order.
// The names feed the keyword bucketing, so each one carries a phase term.
var demoStages = []stageSeed{
	{"Building permit application", 100},
	{"Municipal licensing clearance", 100},
	{"Engineering design review", 100},
	{"Site excavation", 100},
	{"Perimeter piling", 100},
	{"Elevator pit digging", 100},
	{"Foundation pour", 100},
	{"Structural frame erection", 100},
	{"Elevator rail chassis mounting", 80},
	{"Masonry and blockwork", 60},
	{"Wall post installation", 40},
	{"Parapet masonry", 20},
	{"Utilities rough-in", 40},
	{"Mechanical duct runs", 10},
	{"Core drilling for risers", 0},
	{"Electrical duct banks", 0},
	{"Water and sewage utilities hookup", 0},
	{"Interior plaster", 0},
	{"Facade substructure", 0},
	{"Cement screed", 0},
	{"Roof waterproofing", 0},
	{"Bitumen coating", 0},
	{"Exterior facade cladding", 0},
	{"Ceramic floor tiling", 0},
	{"Whitewash and paint", 0},
	{"Suspended ceiling", 0},
	{"Lobby stonework", 0},
	{"Window installation", 0},
	{"Lighting fixtures", 0},
	{"Lobby finishing", 0},
	{"Elevator cab installation", 0},
}

// Run seeds the demo project unless a project already exists.
func Run(db *gorm.DB) error {
	log := logger.Get()

	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("Seed skipped: project already exists")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		project := &models.Project{
			Title:            "Golestan Residential Complex",
			Address:          "14 Golestan Alley, District 2",
			TotalBudget:      15_000_000_000,
			TotalSpent:       4_850_000_000,
			TotalProgress:    45,
			Status:           models.ProjectStatusStructure,
			StartDate:        "2024/03/20",
			EstimatedEndDate: "2026/03/20",
		}
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		partners := []models.Partner{
			{ProjectID: project.ID, Name: "Hossein Karimi", Role: "lead investor", Share: 60, JoinDate: "2024/03/20"},
			{ProjectID: project.ID, Name: "Maryam Sadeghi", Role: "investor", Share: 40, JoinDate: "2024/03/20"},
		}
		if err := tx.Create(&partners).Error; err != nil {
			return err
		}

		stages := make([]models.ProgressStage, len(demoStages))
		for i, s := range demoStages {
			stages[i] = models.ProgressStage{
				ProjectID:  project.ID,
				Position:   i,
				Name:       s.name,
				Percentage: s.percentage,
				Status:     models.DeriveStageStatus(s.percentage),
			}
		}
		if err := tx.Create(&stages).Error; err != nil {
			return err
		}

		leadID := partners[0].ID
		transactions := []models.Transaction{
			{ProjectID: project.ID, Date: "2024/03/25", Amount: 6_000_000_000, Type: models.TransactionTypeDeposit, Description: "Initial capital injection", Status: models.TransactionStatusPaid, PartnerID: &leadID},
			{ProjectID: project.ID, Date: "2024/08/10", Amount: 3_000_000_000, Type: models.TransactionTypeDeposit, Description: "Second capital tranche", Status: models.TransactionStatusPaid},
			{ProjectID: project.ID, Date: "2024/05/02", Amount: 2_100_000_000, Type: models.TransactionTypeExpense, Description: "Excavation and piling contractor", Status: models.TransactionStatusPaid},
			{ProjectID: project.ID, Date: "2024/09/14", Amount: 1_750_000_000, Type: models.TransactionTypeExpense, Description: "Structural steel purchase", Status: models.TransactionStatusPaid},
			{ProjectID: project.ID, Date: "2025/01/20", Amount: 1_000_000_000, Type: models.TransactionTypeExpense, Description: "Concrete and formwork", Status: models.TransactionStatusPaid},
			{ProjectID: project.ID, Date: "2025/02/05", Amount: 600_000_000, Type: models.TransactionTypeDebt, Description: "Rebar supplier credit", Status: models.TransactionStatusPending},
		}
		if err := tx.Create(&transactions).Error; err != nil {
			return err
		}

		report := &models.SiteReport{
			ProjectID:   project.ID,
			Title:       "Cement delivery and pour",
			Description: "Received cement shipment and completed third-floor slab pour.",
			Amount:      130_000_000,
			Date:        "2025/02/18",
			Status:      models.ReportStatusApproved,
			Items: []models.ReportItem{
				{Position: 0, Description: "Type 2 cement", Unit: "bag", Quantity: 500, UnitPrice: 260_000},
			},
		}
		if err := tx.Create(report).Error; err != nil {
			return err
		}

		inventory := []models.InventoryItem{
			{ProjectID: project.ID, Name: "Rebar 16mm", Category: models.InventoryCategoryMaterials, Quantity: 150, Unit: "branch", MinQuantity: 200, LastUpdated: "2025/02/18", Location: "yard north"},
			{ProjectID: project.ID, Name: "Type 2 cement", Category: models.InventoryCategoryMaterials, Quantity: 450, Unit: "bag", MinQuantity: 100, LastUpdated: "2025/02/18", Location: "warehouse"},
			{ProjectID: project.ID, Name: "Ceramic tile 60x60", Category: models.InventoryCategoryMaterials, Quantity: 900, Unit: "sqm", MinQuantity: 300, LastUpdated: "2025/01/30", Location: "warehouse"},
			{ProjectID: project.ID, Name: "Concrete vibrator", Category: models.InventoryCategoryTools, Quantity: 3, Unit: "unit", MinQuantity: 1, LastUpdated: "2024/11/12", Location: "tool room"},
			{ProjectID: project.ID, Name: "Scaffolding frames", Category: models.InventoryCategoryEquipment, Quantity: 120, Unit: "frame", MinQuantity: 80, LastUpdated: "2024/12/01", Location: "yard south"},
		}
		if err := tx.Create(&inventory).Error; err != nil {
			return err
		}

		requests := []models.PurchaseRequest{
			{ProjectID: project.ID, RequesterName: "Reza Mohammadi", ItemName: "Rebar 16mm", Quantity: 300, Unit: "branch", Urgency: models.UrgencyHigh, Description: "Stock under reorder threshold before fourth-floor slab", Date: "2025/02/19", Status: models.RequestStatusPending},
			{ProjectID: project.ID, RequesterName: "Reza Mohammadi", ItemName: "Waterproofing membrane", Quantity: 40, Unit: "roll", Urgency: models.UrgencyLow, Description: "Needed for roof works next quarter", Date: "2025/02/10", Status: models.RequestStatusApproved},
		}
		if err := tx.Create(&requests).Error; err != nil {
			return err
		}

		log.Infof("Seeded demo project %q with %d stages", project.Title, len(stages))
		return nil
	})
}
