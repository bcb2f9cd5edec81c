package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"pharmadesk/infrastructure/api"
	"pharmadesk/infrastructure/diag"
	"pharmadesk/infrastructure/sqlite"
)

type integrationEnv struct {
	server  *httptest.Server
	backend *fakeBackend
	db      *sqlite.DB
}

// fakeBackend stands in for the pharmacy REST API.
type fakeBackend struct {
	mux      *http.ServeMux
	receipts []map[string]any
	deleted  []string
	failNext string
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux()}

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	b.mux.HandleFunc("GET /api/v1/medicine/list", func(w http.ResponseWriter, r *http.Request) {
		if b.failNext != "" {
			http.Error(w, `{"message":"`+b.failNext+`"}`, http.StatusConflict)
			b.failNext = ""
			return
		}
		writeJSON(w, []map[string]any{
			{"id": "7", "name": "Paracetamol", "unit": "strip", "categoryId": "1", "supplierId": "3", "stockOnHand": 120, "purchasePrice": 1.1, "salePrice": 2.5},
		})
	})
	b.mux.HandleFunc("GET /api/v1/category/list", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"id": "1", "name": "Analgesics"}})
	})
	b.mux.HandleFunc("GET /api/v1/supplier/list", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"id": "3", "name": "Medico Ltd", "phone": "555-0101"}})
	})
	b.mux.HandleFunc("GET /api/v1/patient", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"id": "p1", "name": "Jane Roe", "birthDate": "1990-04-12", "gender": "female"}})
	})
	b.mux.HandleFunc("POST /api/v1/medicine/add", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": "99"})
	})
	b.mux.HandleFunc("DELETE /api/v1/medicine/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.deleted = append(b.deleted, r.PathValue("id"))
		writeJSON(w, map[string]any{"id": r.PathValue("id")})
	})
	b.mux.HandleFunc("POST /api/v1/intake/add", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		b.receipts = append(b.receipts, payload)
		writeJSON(w, map[string]any{"id": "r-1"})
	})
	b.mux.HandleFunc("GET /api/v1/intake/history", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"receiptId": "r-1", "intakeDate": "2026-08-01T00:00:00Z", "medicineName": "Paracetamol", "supplierName": "Medico Ltd", "quantity": 50, "remaining": 30, "unitCost": 1.25, "expiryDate": "2027-06-30T00:00:00Z"},
		})
	})
	return b
}

func setupIntegrationServer(t *testing.T) (*integrationEnv, *http.Client) {
	t.Helper()

	backend := newFakeBackend()
	backendSrv := httptest.NewServer(backend.mux)

	dbPath := filepath.Join(t.TempDir(), "server-integration.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	diagSvc := diag.NewService(db)
	client := api.NewClient(backendSrv.URL+"/api/v1", diagSvc)
	s := NewServer("127.0.0.1:0", client, diagSvc)
	ts := httptest.NewServer(s.router)

	env := &integrationEnv{server: ts, backend: backend, db: db}
	t.Cleanup(func() {
		env.server.Close()
		backendSrv.Close()
		_ = env.db.Close()
	})

	return env, newHTTPClient(t)
}

func newHTTPClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, baseURL, path string) *http.Response {
	t.Helper()
	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

// postForm submits form fields the way a browser would: the csrf token comes
// from the hidden _csrf input on a rendered page, never from the cookie jar.
func postForm(t *testing.T, client *http.Client, baseURL, path string, data url.Values) *http.Response {
	t.Helper()
	if data == nil {
		data = url.Values{}
	}
	data.Set("_csrf", renderedCSRFToken(t, client, baseURL))
	resp, err := client.PostForm(baseURL+path, data)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

var csrfFieldPattern = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

func renderedCSRFToken(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()
	body := readBody(t, get(t, client, baseURL, "/admin/medicines"))
	m := csrfFieldPattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("no _csrf field on the rendered page: %s", body)
	}
	return m[1]
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestIntegration_RootRedirectsToMedicines(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/medicines" {
		t.Fatalf("unexpected redirect: %s", loc)
	}
}

func TestIntegration_MedicinesPageRendersBackendRows(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/admin/medicines")
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Paracetamol") {
		t.Fatalf("backend rows missing from page: %s", body)
	}
}

func TestIntegration_MutationWithoutCSRFTokenIsRejected(t *testing.T) {
	env, _ := setupIntegrationServer(t)

	resp, err := http.PostForm(env.server.URL+"/admin/medicines/save", url.Values{"name": {"X"}})
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without csrf token, got %d", resp.StatusCode)
	}
}

func TestIntegration_RenderedFormsCarryCSRFToken(t *testing.T) {
	env, client := setupIntegrationServer(t)

	body := readBody(t, get(t, client, env.server.URL, "/admin/medicines"))
	if !strings.Contains(body, `name="_csrf"`) {
		t.Fatalf("rendered page must embed the csrf field in its forms: %s", body)
	}
}

// A delete form submitted exactly as served must clear the csrf check.
func TestIntegration_RenderedDeleteFormSubmits(t *testing.T) {
	env, client := setupIntegrationServer(t)

	body := readBody(t, get(t, client, env.server.URL, "/admin/medicines"))
	if !strings.Contains(body, `action="/admin/medicines/delete/7"`) {
		t.Fatalf("expected a delete form for the backend row: %s", body)
	}
	m := csrfFieldPattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("delete form carries no _csrf field: %s", body)
	}

	resp, err := client.PostForm(env.server.URL+"/admin/medicines/delete/7", url.Values{"_csrf": {m[1]}})
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusForbidden {
		t.Fatal("rendered form submission must pass the csrf check")
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after delete, got %d", resp.StatusCode)
	}
	if len(env.backend.deleted) != 1 || env.backend.deleted[0] != "7" {
		t.Fatalf("backend must receive the delete, got %v", env.backend.deleted)
	}
}

func TestIntegration_IntakeSubmitPostsCompositeReceipt(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := postForm(t, client, env.server.URL, "/admin/intake", url.Values{
		"action":     {"submit"},
		"supplierId": {"3"},
		"intakeDate": {"2026-08-28"},
		"medicineId": {"7", "7"},
		"quantity":   {"50", "20"},
		"unitCost":   {"1.25", "0.80"},
		"expiryDate": {"2027-06-30", "2027-01-15"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after submit, got %d", resp.StatusCode)
	}
	if len(env.backend.receipts) != 1 {
		t.Fatalf("backend must receive exactly one composite request, got %d", len(env.backend.receipts))
	}
	lines, _ := env.backend.receipts[0]["lineItems"].([]any)
	if len(lines) != 2 {
		t.Fatalf("composite request must carry both rows, got %v", env.backend.receipts[0])
	}
}

func TestIntegration_BackendFailureIsRecordedInDiagnostics(t *testing.T) {
	env, client := setupIntegrationServer(t)
	env.backend.failNext = "Backend exploded"

	resp := get(t, client, env.server.URL, "/admin/medicines")
	body := readBody(t, resp)
	if !strings.Contains(body, "Backend exploded") {
		t.Fatalf("backend message must surface on the page: %s", body)
	}

	svc := diag.NewService(env.db)
	records, err := svc.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("read diagnostics: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("backend failure must be recorded")
	}
	if records[0].Op != "medicine.list" || records[0].Message != "Backend exploded" {
		t.Fatalf("unexpected failure record: %+v", records[0])
	}

	body = readBody(t, get(t, client, env.server.URL, "/admin/diagnostics"))
	if !strings.Contains(body, "Backend exploded") || !strings.Contains(body, "medicine.list") {
		t.Fatalf("diagnostics page must show the recorded failure: %s", body)
	}
}

func TestIntegration_HealthAndMetricsEndpoints(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/health")
	if body := readBody(t, resp); body != "ok" {
		t.Fatalf("unexpected health body %q", body)
	}

	// Generate a request so the counter has something to report.
	resp = get(t, client, env.server.URL, "/admin/suppliers")
	_ = readBody(t, resp)

	resp = get(t, client, env.server.URL, "/metrics")
	body := readBody(t, resp)
	if !strings.Contains(body, "pharmadesk_http_requests_total") {
		t.Fatalf("metrics endpoint must expose request counters: %s", body)
	}
}
