package integration

import (
	"net/http"
	"testing"

	"sitedesk/internal/seed"
)

func TestDashboardFlow_SeededProject(t *testing.T) {
	app := setupApp(t)
	if err := seed.Run(app.DB); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	rec := app.request("GET", "/api/v1/project/dashboard", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	// Budget allocation
	allocation := result["allocation"].(map[string]interface{})
	if allocation["remaining"].(float64) != 10150000000 {
		t.Errorf("expected remaining 10150000000, got %.0f", allocation["remaining"].(float64))
	}
	if allocation["over_budget"].(bool) {
		t.Error("expected project within budget")
	}

	// Financial rollup: two deposits, three expenses, one unpaid debt
	financial := result["financial"].(map[string]interface{})
	if financial["deposits"].(float64) != 9000000000 {
		t.Errorf("expected deposits 9000000000, got %.0f", financial["deposits"].(float64))
	}
	if financial["expenses"].(float64) != 4850000000 {
		t.Errorf("expected expenses 4850000000, got %.0f", financial["expenses"].(float64))
	}
	if financial["outstanding_debt"].(float64) != 600000000 {
		t.Errorf("expected outstanding debt 600000000, got %.0f", financial["outstanding_debt"].(float64))
	}

	// Every seeded stage lands in a bucket
	buckets := result["buckets"].([]interface{})
	stageCount := 0.0
	for _, b := range buckets {
		stageCount += b.(map[string]interface{})["stage_count"].(float64)
	}
	if stageCount != 31 {
		t.Errorf("expected all 31 stages bucketed, got %.0f", stageCount)
	}

	// Permits are done, so the structure phase is current
	first := buckets[0].(map[string]interface{})
	if first["status"] != "completed" {
		t.Errorf("expected first bucket completed, got %v", first["status"])
	}
	current := result["current_bucket"].(map[string]interface{})
	if current["name"] != "Structure & Walls" {
		t.Errorf("expected current bucket Structure & Walls, got %v", current["name"])
	}

	// Rebar is under threshold, one request awaits review
	if result["low_stock_count"].(float64) != 1 {
		t.Errorf("expected 1 low-stock item, got %.0f", result["low_stock_count"].(float64))
	}
	if result["pending_requests"].(float64) != 1 {
		t.Errorf("expected 1 pending request, got %.0f", result["pending_requests"].(float64))
	}
}

func TestDashboardFlow_SeedIsIdempotent(t *testing.T) {
	app := setupApp(t)
	if err := seed.Run(app.DB); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := seed.Run(app.DB); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	rec := app.request("GET", "/api/v1/progress/stages", "", "")
	stages := parseJSON(t, rec)["stages"].([]interface{})
	if len(stages) != 31 {
		t.Errorf("expected 31 stages after double seed, got %d", len(stages))
	}
}

func TestDashboardFlow_ReconciliationOnCleanSeed(t *testing.T) {
	app := setupApp(t)
	if err := seed.Run(app.DB); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	rec := app.request("GET", "/api/v1/project/reconciliation", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	discrepancies := parseJSON(t, rec)["discrepancies"].([]interface{})
	if len(discrepancies) != 0 {
		t.Errorf("expected clean seed to reconcile, got %v", discrepancies)
	}
}

func TestDashboardFlow_NoProject(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/project/dashboard", "", "")
	assertErrorCode(t, rec, http.StatusNotFound, "PROJECT_NOT_FOUND")
}
