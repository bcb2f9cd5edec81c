package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmadesk/infrastructure/diag"
	"pharmadesk/models"
)

type recordedFailure struct {
	failures []diag.Failure
}

func (r *recordedFailure) RecordFailure(_ context.Context, f diag.Failure) {
	r.failures = append(r.failures, f)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordedFailure) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	rec := &recordedFailure{}
	return NewClient(ts.URL, rec), rec
}

func TestErrorMessageJSONField(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Duplicate code"}`))
	})

	_, err := client.ListMedicines(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "Duplicate code" {
		t.Fatalf("expected message %q, got %q", "Duplicate code", err.Error())
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.StatusCode)
	}
	if len(rec.failures) != 1 || rec.failures[0].Message != "Duplicate code" {
		t.Fatalf("expected failure recorded to diagnostics, got %+v", rec.failures)
	}
}

func TestErrorMessagePatternFallback(t *testing.T) {
	// Truncated JSON: unparseable, but the message field is still
	// recoverable from the raw text.
	body := `{"message":"Supplier not found","detail`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(body))
	})

	_, err := client.ListSuppliers(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "Supplier not found" {
		t.Fatalf("expected pattern-extracted message, got %q", err.Error())
	}
}

func TestErrorMessageHTMLBodySurfacedRaw(t *testing.T) {
	body := "<html><body>404 Not Found</body></html>"
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(body))
	})

	_, err := client.ListPatients(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != body {
		t.Fatalf("expected raw body text, got %q", err.Error())
	}
}

func TestErrorMessageEmptyBodyGeneric(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListMedicines(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "HTTP error 502" {
		t.Fatalf("expected generic status message, got %q", err.Error())
	}
}

func TestSuccessEmptyBodyReturnsEmptyResult(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	items, err := client.ListMedicines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(items))
	}
	if len(rec.failures) != 0 {
		t.Fatalf("success must not be recorded as failure")
	}
}

func TestSuccessMalformedBodyTreatedAsNoData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	})

	items, err := client.ListSuppliers(context.Background())
	if err != nil {
		t.Fatalf("malformed success body must not be a hard failure: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no data, got %d items", len(items))
	}
}

func TestNetworkFailureRecordedAndPropagated(t *testing.T) {
	rec := &recordedFailure{}
	client := NewClient("http://127.0.0.1:1", rec)

	_, err := client.ListMedicines(context.Background())
	if err == nil {
		t.Fatalf("expected network error")
	}
	if len(rec.failures) != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", len(rec.failures))
	}
	if rec.failures[0].StatusCode != 0 {
		t.Fatalf("network failure should carry status 0, got %d", rec.failures[0].StatusCode)
	}
}

func TestCreateMedicineSendsPayloadAndRequestID(t *testing.T) {
	var gotPath, gotRequestID string
	var gotPayload models.MedicinePayload
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		_ = json.NewEncoder(w).Encode(models.Medicine{ID: "42", Name: gotPayload.Name})
	})

	created, err := client.CreateMedicine(context.Background(), models.MedicinePayload{
		Name:       "Paracetamol 500mg",
		Unit:       models.UnitStrip,
		CategoryID: "3",
		SupplierID: "7",
		SalePrice:  12.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotPath != "/medicine/add" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotRequestID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if gotPayload.SupplierID != "7" || gotPayload.SalePrice != 12.5 {
		t.Fatalf("payload not transmitted intact: %+v", gotPayload)
	}
	if created.ID != "42" {
		t.Fatalf("expected created id 42, got %q", created.ID)
	}
}

func TestUpdateSupplierCarriesIDInBody(t *testing.T) {
	var gotPath string
	var gotBody models.SupplierPayload
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_ = json.NewEncoder(w).Encode(models.Supplier{ID: gotBody.ID, Name: gotBody.Name})
	})

	_, err := client.UpdateSupplier(context.Background(), "15", models.SupplierPayload{Name: "MediSupply"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotPath != "/supplier/fix" {
		t.Fatalf("supplier fix must not carry the id in the path, got %q", gotPath)
	}
	if gotBody.ID != "15" {
		t.Fatalf("expected id 15 in body, got %q", gotBody.ID)
	}
}

func TestCreateReceiptSingleCompositeRequest(t *testing.T) {
	var calls int
	var gotPayload models.ReceiptPayload
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		_ = json.NewEncoder(w).Encode(models.Receipt{ID: "R1"})
	})

	payload := models.ReceiptPayload{
		SupplierID: 7,
		IntakeDate: "2026-08-28T00:00:00Z",
		LineItems: []models.ReceiptLine{
			{MedicineID: 1, Quantity: 10, UnitCost: 2.5, ExpiryDate: "2027-01-01T00:00:00Z"},
			{MedicineID: 2, Quantity: 4, UnitCost: 9, ExpiryDate: "2027-06-01T00:00:00Z"},
		},
	}
	if _, err := client.CreateReceipt(context.Background(), payload); err != nil {
		t.Fatalf("create receipt: %v", err)
	}
	if calls != 1 {
		t.Fatalf("receipt creation must issue exactly one request, got %d", calls)
	}
	if len(gotPayload.LineItems) != 2 || gotPayload.SupplierID != 7 {
		t.Fatalf("composite payload not transmitted: %+v", gotPayload)
	}
}
