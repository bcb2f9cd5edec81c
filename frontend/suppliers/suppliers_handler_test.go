package suppliers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"pharmadesk/models"
)

type fakeRemote struct {
	suppliers []models.Supplier
	listErr   error
	saveErr   error
	deleteErr error

	deleted []string
	saved   []models.SupplierPayload
}

func (f *fakeRemote) ListSuppliers(context.Context) ([]models.Supplier, error) {
	return f.suppliers, f.listErr
}

func (f *fakeRemote) CreateSupplier(_ context.Context, p models.SupplierPayload) (models.Supplier, error) {
	f.saved = append(f.saved, p)
	return models.Supplier{ID: "s-new"}, f.saveErr
}

func (f *fakeRemote) UpdateSupplier(_ context.Context, id string, p models.SupplierPayload) (models.Supplier, error) {
	p.ID = id
	f.saved = append(f.saved, p)
	return models.Supplier{ID: id}, f.saveErr
}

func (f *fakeRemote) DeleteSupplier(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func seedRemote() *fakeRemote {
	return &fakeRemote{
		suppliers: []models.Supplier{
			{ID: "s1", Name: "Medico Ltd", Phone: "555-0101"},
			{ID: "s2", Name: "PharmSupply", Phone: "555-0199"},
		},
	}
}

func TestSuppliersPageListsRows(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/suppliers", nil)
	rec := httptest.NewRecorder()

	SuppliersPageQueryHandler(seedRemote())(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Medico Ltd") || !strings.Contains(body, "PharmSupply") {
		t.Fatalf("rows missing from page: %s", body)
	}
}

func TestSuppliersPageEditModalPrefillsRow(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/suppliers?modal=edit&id=s2", nil)
	rec := httptest.NewRecorder()

	SuppliersPageQueryHandler(seedRemote())(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `name="name" value="PharmSupply"`) {
		t.Fatalf("edit form must prefill the row: %s", body)
	}
}

func TestSaveSupplierFailureRendersBackendMessage(t *testing.T) {
	remote := seedRemote()
	remote.saveErr = errors.New("Supplier name already exists")

	form := url.Values{"name": {"Medico Ltd"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/suppliers/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	SaveSupplierCommandHandler(remote)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("failed save must re-render, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Supplier name already exists") {
		t.Fatalf("backend message missing: %s", body)
	}
	if !strings.Contains(body, `name="name" value="Medico Ltd"`) {
		t.Fatalf("draft must survive the failed save")
	}
}

func TestDeleteSupplierTargetsRowAndReloads(t *testing.T) {
	remote := seedRemote()

	router := chi.NewRouter()
	router.Post("/admin/suppliers/delete/{id}", DeleteSupplierCommandHandler(remote))

	req := httptest.NewRequest(http.MethodPost, "/admin/suppliers/delete/s1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if len(remote.deleted) != 1 || remote.deleted[0] != "s1" {
		t.Fatalf("delete must target the row id, got %v", remote.deleted)
	}
	if !strings.Contains(rec.Body.String(), "Medico Ltd") {
		t.Fatalf("list must be reloaded after delete")
	}
}
