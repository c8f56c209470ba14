package insights

import (
	"testing"

	"sitedesk/internal/models"
)

func item(quantity, minQuantity float64) models.InventoryItem {
	return models.InventoryItem{Quantity: quantity, MinQuantity: minQuantity}
}

func TestLowStock(t *testing.T) {
	rebar := item(150, 200)
	cement := item(450, 100)
	atThreshold := item(200, 200)

	flagged := LowStock([]models.InventoryItem{rebar, cement, atThreshold})

	if len(flagged) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(flagged))
	}
	if flagged[0].Quantity != 150 {
		t.Errorf("expected rebar flagged first, got quantity %v", flagged[0].Quantity)
	}
	// threshold is inclusive: quantity equal to minimum is low
	if flagged[1].Quantity != 200 {
		t.Errorf("expected at-threshold item flagged, got quantity %v", flagged[1].Quantity)
	}
}

func TestStockGauge(t *testing.T) {
	tests := []struct {
		name     string
		item     models.InventoryItem
		expected float64
	}{
		{"below_threshold", item(150, 200), 25},
		{"well_stocked_clamps_to_100", item(450, 100), 100},
		{"at_triple_threshold", item(300, 100), 100},
		{"half_gauge", item(150, 100), 50},
		{"zero_quantity", item(0, 100), 0},
		{"zero_threshold_is_full", item(5, 0), 100},
		{"negative_threshold_is_full", item(5, -10), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StockGauge(&tt.item)
			if got != tt.expected {
				t.Errorf("expected gauge %v, got %v", tt.expected, got)
			}
		})
	}
}
