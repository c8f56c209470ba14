package models

// InventoryCategory classifies stock kept on site.
type InventoryCategory string

const (
	InventoryCategoryMaterials InventoryCategory = "materials"
	InventoryCategoryTools     InventoryCategory = "tools"
	InventoryCategoryEquipment InventoryCategory = "equipment"
)

// InventoryItem represents stock of one material, tool, or piece of
// equipment on site. MinQuantity is the reorder threshold.
type InventoryItem struct {
	Base
	ProjectID   string            `gorm:"type:uuid;not null;index" json:"project_id"`
	Name        string            `gorm:"not null" json:"name"`
	Category    InventoryCategory `gorm:"not null" json:"category"`
	Quantity    float64           `gorm:"not null" json:"quantity"`
	Unit        string            `json:"unit"`
	MinQuantity float64           `gorm:"not null" json:"min_quantity"`
	LastUpdated string            `json:"last_updated"`
	Location    string            `json:"location,omitempty"`
}

// IsLowStock reports whether the item has hit its reorder threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}
