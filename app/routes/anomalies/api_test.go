package anomalies_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/routes/anomalies"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

func newTestApp() (*fiber.App, *store.MemStore) {
	st := store.NewSeeded()
	app := fiber.New()
	anomalies.SetupAnomaliesRoutes(app, st)
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("%s %s: read body: %v", method, target, err)
	}
	return resp, payload
}

func TestGetAnomalies_ListsAllMostRecentFirst(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, "GET", "/api/anomalies", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list []models.AnomalyWithEmployee
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 anomalies, got %d", len(list))
	}
	if list[0].Type != "Overtime Spike" {
		t.Errorf("expected most recent anomaly first, got %s", list[0].Type)
	}
	if list[0].Employee.EmployeeID != "EMP-1247" {
		t.Errorf("expected joined employee EMP-1247, got %s", list[0].Employee.EmployeeID)
	}
}

func TestGetAnomalies_Filters(t *testing.T) {
	app, _ := newTestApp()

	cases := []struct {
		target string
		want   int
	}{
		{"/api/anomalies?riskLevel=Critical", 1},
		{"/api/anomalies?riskLevel=Low", 0},
		{"/api/anomalies?riskLevel=All%20Risk%20Levels", 3},
		{"/api/anomalies?department=Sales", 1},
		{"/api/anomalies?department=All%20Departments", 3},
		// riskLevel wins when both are present.
		{"/api/anomalies?riskLevel=Critical&department=Sales", 1},
	}
	for _, tc := range cases {
		resp, body := doJSON(t, app, "GET", tc.target, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.target, resp.StatusCode)
		}
		var list []models.AnomalyWithEmployee
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("%s: decode: %v", tc.target, err)
		}
		if len(list) != tc.want {
			t.Errorf("%s: expected %d anomalies, got %d", tc.target, tc.want, len(list))
		}
	}
}

func TestGetAnomaly_WithInsights(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, "GET", "/api/anomalies/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var anomaly models.AnomalyWithInsights
	if err := json.Unmarshal(body, &anomaly); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if anomaly.ID != 1 {
		t.Errorf("expected id 1, got %d", anomaly.ID)
	}
	if anomaly.AiInsight == nil || anomaly.AiInsight.AnomalyID != 1 {
		t.Errorf("expected attached insight, got %+v", anomaly.AiInsight)
	}
}

func TestGetAnomaly_Misses(t *testing.T) {
	app, _ := newTestApp()

	resp, _ := doJSON(t, app, "GET", "/api/anomalies/999", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "GET", "/api/anomalies/notanumber", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed id: expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateAnomalyStatus(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, "PATCH", "/api/anomalies/1/status", `{"status":"Resolved"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var updated models.Anomaly
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Status != models.StatusResolved {
		t.Errorf("expected Resolved, got %q", updated.Status)
	}
	if updated.ResolvedAt == nil {
		t.Error("expected resolvedAt to be set")
	}
}

func TestUpdateAnomalyStatus_Rejections(t *testing.T) {
	app, st := newTestApp()
	before := len(st.GetAllAnomalies())

	resp, _ := doJSON(t, app, "PATCH", "/api/anomalies/1/status", `{"status":"Closed"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "PATCH", "/api/anomalies/1/status", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing status: expected 400, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "PATCH", "/api/anomalies/999/status", `{"status":"Resolved"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", resp.StatusCode)
	}

	if after := len(st.GetAllAnomalies()); after != before {
		t.Errorf("collection size changed: %d -> %d", before, after)
	}
}

func TestCreateAnomaly(t *testing.T) {
	app, st := newTestApp()

	payload := `{
		"employeeId": 1,
		"type": "Rate Variance",
		"description": "8% above standard rate",
		"riskLevel": "Low",
		"amount": "950.00",
		"confidence": 65,
		"payPeriod": "Nov 16-30, 2024"
	}`
	resp, body := doJSON(t, app, "POST", "/api/anomalies", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var created models.Anomaly
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected id 4, got %d", created.ID)
	}
	if created.Status != models.StatusUnderReview {
		t.Errorf("expected default status, got %q", created.Status)
	}
	if len(st.GetAllAnomalies()) != 4 {
		t.Error("anomaly was not stored")
	}
}

func TestCreateAnomaly_UnknownEmployeeRejected(t *testing.T) {
	app, st := newTestApp()

	payload := `{
		"employeeId": 42,
		"type": "Rate Variance",
		"description": "orphan",
		"riskLevel": "Low",
		"amount": "950.00",
		"confidence": 65,
		"payPeriod": "Nov 16-30, 2024"
	}`
	resp, _ := doJSON(t, app, "POST", "/api/anomalies", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if len(st.GetAllAnomalies()) != 3 {
		t.Error("rejected anomaly must not be stored")
	}
}
