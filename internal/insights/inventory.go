package insights

import "sitedesk/internal/models"

// LowStock returns the items that have hit their reorder threshold, in
// input order. The count feeds the alert banner.
func LowStock(items []models.InventoryItem) []models.InventoryItem {
	var flagged []models.InventoryItem
	for i := range items {
		if items[i].IsLowStock() {
			flagged = append(flagged, items[i])
		}
	}
	return flagged
}

// StockGauge computes the visual gauge value for an item as
// min(100, quantity / (minQuantity*3) * 100), clamped into [0, 100].
// The 3x scaling puts the reorder threshold at a third of the gauge.
func StockGauge(item *models.InventoryItem) float64 {
	if item.MinQuantity <= 0 {
		return 100
	}
	gauge := item.Quantity / (item.MinQuantity * 3) * 100
	if gauge > 100 {
		return 100
	}
	if gauge < 0 {
		return 0
	}
	return gauge
}
