package integration

import (
	"fmt"
	"net/http"
	"testing"
)

const requestBody = `{"requester_name":"Reza Mohammadi","item_name":"Rebar 16mm","quantity":300,"unit":"branch","urgency":"high","description":"slab pour","date":"2025/02/19"}`

func TestRequestFlow_ApproveThenPurchase(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	// Site staff files a request; it always starts pending
	rec := app.request("POST", "/api/v1/purchase-requests", requestBody, "requester")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)["request"].(map[string]interface{})
	if created["status"] != "pending" {
		t.Fatalf("expected pending, got %v", created["status"])
	}
	id := created["id"].(string)

	// The badge counts it
	rec = app.request("GET", "/api/v1/purchase-requests/pending-count", "", "")
	if parseJSON(t, rec)["pending"].(float64) != 1 {
		t.Error("expected pending count 1")
	}

	// An approver moves it through the workflow
	rec = app.request("PATCH", fmt.Sprintf("/api/v1/purchase-requests/%s/status", id),
		`{"status":"approved"}`, "approver")
	if rec.Code != http.StatusOK {
		t.Fatalf("approve failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("PATCH", fmt.Sprintf("/api/v1/purchase-requests/%s/status", id),
		`{"status":"purchased"}`, "approver")
	if rec.Code != http.StatusOK {
		t.Fatalf("purchase failed: %d %s", rec.Code, rec.Body.String())
	}

	// purchased is terminal
	rec = app.request("PATCH", fmt.Sprintf("/api/v1/purchase-requests/%s/status", id),
		`{"status":"rejected"}`, "approver")
	assertErrorCode(t, rec, http.StatusBadRequest, "ILLEGAL_TRANSITION")

	// And it no longer counts as pending
	rec = app.request("GET", "/api/v1/purchase-requests/pending-count", "", "")
	if parseJSON(t, rec)["pending"].(float64) != 0 {
		t.Error("expected pending count 0")
	}
}

func TestRequestFlow_RoleEnforcement(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	// Approvers do not create requests
	rec := app.request("POST", "/api/v1/purchase-requests", requestBody, "approver")
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	// Requesters do not transition them
	rec = app.request("POST", "/api/v1/purchase-requests", requestBody, "requester")
	id := parseJSON(t, rec)["request"].(map[string]interface{})["id"].(string)

	rec = app.request("PATCH", fmt.Sprintf("/api/v1/purchase-requests/%s/status", id),
		`{"status":"approved"}`, "requester")
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	// The missing header defaults to requester
	rec = app.request("PATCH", fmt.Sprintf("/api/v1/purchase-requests/%s/status", id),
		`{"status":"approved"}`, "")
	assertErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	// An unknown role is rejected outright
	rec = app.request("POST", "/api/v1/purchase-requests", requestBody, "superuser")
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_ROLE")
}

func TestRequestFlow_SkippingApprovalFails(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	rec := app.request("POST", "/api/v1/purchase-requests", requestBody, "requester")
	id := parseJSON(t, rec)["request"].(map[string]interface{})["id"].(string)

	rec = app.request("PATCH", fmt.Sprintf("/api/v1/purchase-requests/%s/status", id),
		`{"status":"purchased"}`, "approver")
	assertErrorCode(t, rec, http.StatusBadRequest, "ILLEGAL_TRANSITION")
}

func TestRequestFlow_CannotCreatePreApproved(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	body := `{"requester_name":"Reza Mohammadi","item_name":"Rebar 16mm","quantity":300,"unit":"branch","urgency":"high","date":"2025/02/19","status":"approved"}`
	rec := app.request("POST", "/api/v1/purchase-requests", body, "requester")
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_INITIAL_STATUS")
}

func TestRequestFlow_UnknownRequest(t *testing.T) {
	app := setupApp(t)
	app.createProject(t)

	rec := app.request("PATCH", "/api/v1/purchase-requests/00000000-0000-0000-0000-000000000000/status",
		`{"status":"approved"}`, "approver")
	assertErrorCode(t, rec, http.StatusNotFound, "REQUEST_NOT_FOUND")
}
