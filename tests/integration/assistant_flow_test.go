package integration

import (
	"net/http"
	"testing"
)

func TestAssistantFlow_NotConfigured(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	// No API key is configured in the test stack
	rec := app.request("POST", "/api/v1/assistant/query",
		`{"query":"How much has been spent?"}`, "")
	assertErrorCode(t, rec, http.StatusServiceUnavailable, "ASSISTANT_NOT_CONFIGURED")
}

func TestAssistantFlow_ConfirmDraft(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	// A reviewed draft is committed as a pending report
	rec := app.request("POST", "/api/v1/assistant/report-draft/confirm",
		`{"title":"cement purchase","description":"bought 500 bags","amount":130000000,"date":"2025/02/18","items":[{"description":"Type 2 cement","unit":"bag","quantity":500,"unit_price":260000}]}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)["report"].(map[string]interface{})
	if report["status"] != "pending" {
		t.Errorf("expected confirmed draft to start pending, got %v", report["status"])
	}
	items := report["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("expected 1 line item, got %d", len(items))
	}

	// It shows up in the normal report listing
	rec = app.request("GET", "/api/v1/reports", "", "")
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 report, got %.0f", result["total_items"].(float64))
	}
}

func TestAssistantFlow_IncompleteDraftRejected(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	rec := app.request("POST", "/api/v1/assistant/report-draft/confirm",
		`{"title":"","amount":-5,"date":"soon","items":[]}`, "")
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_DRAFT")
}

func TestAssistantFlow_EmptyAudioRejected(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	rec := app.request("POST", "/api/v1/assistant/report-draft",
		`{"audio":"not-base64!!"}`, "")
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
}
