package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/models"
)

// inventoryService handles site stock.
type inventoryService struct {
	db             *gorm.DB
	projectService ProjectServicer
}

// NewInventoryService creates a new InventoryServicer.
func NewInventoryService(db *gorm.DB, projectService ProjectServicer) InventoryServicer {
	return &inventoryService{
		db:             db,
		projectService: projectService,
	}
}

// GetItems returns all inventory items in creation order.
func (s *inventoryService) GetItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Order("created_at").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// AddItem registers a new inventory item.
func (s *inventoryService) AddItem(
	name string,
	category models.InventoryCategory,
	quantity float64,
	unit string,
	minQuantity float64,
	lastUpdated, location string,
) (*models.InventoryItem, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
	}
	switch category {
	case models.InventoryCategoryMaterials, models.InventoryCategoryTools, models.InventoryCategoryEquipment:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be materials, tools, or equipment")
	}
	if quantity < 0 || minQuantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantities must not be negative")
	}
	if !validDate(lastUpdated) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "last updated date must be formatted YYYY/MM/DD")
	}

	project, err := s.projectService.GetProject()
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		ProjectID:   project.ID,
		Name:        name,
		Category:    category,
		Quantity:    quantity,
		Unit:        unit,
		MinQuantity: minQuantity,
		LastUpdated: lastUpdated,
		Location:    location,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// ReceiveStock increases an item's quantity by a delivery.
func (s *inventoryService) ReceiveStock(itemID string, quantity float64, date string) (*models.InventoryItem, error) {
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "received quantity must be greater than zero")
	}
	return s.adjustStock(itemID, quantity, date)
}

// ConsumeStock decreases an item's quantity. Consuming more than is on
// hand is rejected.
func (s *inventoryService) ConsumeStock(itemID string, quantity float64, date string) (*models.InventoryItem, error) {
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "consumed quantity must be greater than zero")
	}
	return s.adjustStock(itemID, -quantity, date)
}

// adjustStock applies a signed quantity delta atomically.
func (s *inventoryService) adjustStock(itemID string, delta float64, date string) (*models.InventoryItem, error) {
	if date == "" || !validDate(date) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted YYYY/MM/DD")
	}

	var item models.InventoryItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInventoryItemNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		newQuantity := item.Quantity + delta
		if newQuantity < 0 {
			return apperrors.ErrInsufficientStock
		}

		updates := map[string]interface{}{
			"quantity":     newQuantity,
			"last_updated": date,
		}
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
