package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func (a *testApp) addItem(t *testing.T, body string) string {
	t.Helper()
	rec := a.request("POST", "/api/v1/inventory", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to add item: %d: %s", rec.Code, rec.Body.String())
	}
	item := parseJSON(t, rec)["item"].(map[string]interface{})
	return item["id"].(string)
}

func TestInventoryFlow_ReceiveAndConsume(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	itemID := app.addItem(t, `{"name":"Rebar 16mm","category":"materials","quantity":150,"unit":"bundle","min_quantity":200,"location":"Yard A"}`)

	// Starts below the minimum
	rec := app.request("GET", "/api/v1/inventory/low-stock", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if count := parseJSON(t, rec)["count"].(float64); count != 1 {
		t.Errorf("expected 1 low-stock item, got %.0f", count)
	}

	// A delivery lifts it clear
	rec = app.request("POST", fmt.Sprintf("/api/v1/inventory/%s/receive", itemID),
		`{"quantity":300,"date":"2025/03/10"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	item := parseJSON(t, rec)["item"].(map[string]interface{})
	if item["quantity"].(float64) != 450 {
		t.Errorf("expected quantity 450 after delivery, got %v", item["quantity"])
	}
	if item["is_low_stock"].(bool) {
		t.Error("expected item to be above minimum after delivery")
	}

	// Consumption draws it back down
	rec = app.request("POST", fmt.Sprintf("/api/v1/inventory/%s/consume", itemID),
		`{"quantity":50,"date":"2025/03/12"}`, "")
	item = parseJSON(t, rec)["item"].(map[string]interface{})
	if item["quantity"].(float64) != 400 {
		t.Errorf("expected quantity 400 after consumption, got %v", item["quantity"])
	}

	rec = app.request("GET", "/api/v1/inventory/low-stock", "", "")
	if count := parseJSON(t, rec)["count"].(float64); count != 0 {
		t.Errorf("expected no low-stock items, got %.0f", count)
	}
}

func TestInventoryFlow_OverconsumeRejected(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	itemID := app.addItem(t, `{"name":"Type 2 cement","category":"materials","quantity":40,"unit":"bag","min_quantity":100}`)

	rec := app.request("POST", fmt.Sprintf("/api/v1/inventory/%s/consume", itemID),
		`{"quantity":41,"date":"2025/03/12"}`, "")
	assertErrorCode(t, rec, http.StatusBadRequest, "INSUFFICIENT_STOCK")

	// Stock is untouched by the failed draw
	rec = app.request("GET", "/api/v1/inventory", "", "")
	items := parseJSON(t, rec)["items"].([]interface{})
	if q := items[0].(map[string]interface{})["quantity"].(float64); q != 40 {
		t.Errorf("expected quantity unchanged at 40, got %v", q)
	}
}

func TestInventoryFlow_UnknownItem(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	rec := app.request("POST", "/api/v1/inventory/missing/receive",
		`{"quantity":10,"date":"2025/03/12"}`, "")
	assertErrorCode(t, rec, http.StatusNotFound, "INVENTORY_ITEM_NOT_FOUND")
}
