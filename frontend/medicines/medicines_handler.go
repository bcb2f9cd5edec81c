package medicines

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"pharmadesk/frontend/shared/listing"
	"pharmadesk/models"
)

// MedicinesPageQueryHandler renders the medicine list. The modal query
// parameter opens the add form (modal=add) or the edit form prefilled from
// the loaded row (modal=edit&id=...).
func MedicinesPageQueryHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := listing.New(remote.ListMedicines)
		p.Load(r.Context())

		data := PageData{
			Rows:    p.Items,
			Loading: p.Loading,
			LoadErr: p.Err,
			Flash:   strings.TrimSpace(r.URL.Query().Get("status")),
		}

		switch r.URL.Query().Get("modal") {
		case "add":
			data.ModalOpen = true
			data.Form = NewForm(nil)
		case "edit":
			id := r.URL.Query().Get("id")
			if existing := findMedicine(p.Items, id); existing != nil {
				data.ModalOpen = true
				data.Form = NewForm(existing)
			}
		}
		if data.ModalOpen {
			fillReferenceLists(r.Context(), remote, &data)
		}

		renderPage(w, r, data)
	}
}

// SaveMedicineCommandHandler rebuilds the form from the posted fields and
// submits it. Success redirects back to the list; any failure re-renders
// the page with the modal open and the draft intact.
func SaveMedicineCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/medicines?status="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		f := NewForm(nil)
		f.Draft.ID = strings.TrimSpace(r.FormValue("id"))
		for _, name := range []string{"name", "unit", "categoryId", "supplierId", "salePrice"} {
			f = f.SetField(name, r.FormValue(name))
		}

		f, ok := f.Submit(r.Context(), remote)
		if ok {
			http.Redirect(w, r, "/admin/medicines", http.StatusSeeOther)
			return
		}

		p := listing.New(remote.ListMedicines)
		p.Load(r.Context())
		data := PageData{
			Rows:      p.Items,
			Loading:   p.Loading,
			LoadErr:   p.Err,
			ModalOpen: true,
			Form:      f,
		}
		fillReferenceLists(r.Context(), remote, &data)
		renderPage(w, r, data)
	}
}

// DeleteMedicineCommandHandler deletes one row and reloads the list. The
// confirmation happened client side; the reload happens whether or not the
// delete went through, and a delete failure is surfaced as a banner.
func DeleteMedicineCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		p := listing.New(remote.ListMedicines)
		err := p.Delete(r.Context(), func(ctx context.Context) error {
			return remote.DeleteMedicine(ctx, id)
		})

		data := PageData{
			Rows:    p.Items,
			Loading: p.Loading,
			LoadErr: p.Err,
		}
		if err != nil {
			data.Flash = err.Error()
		}
		renderPage(w, r, data)
	}
}

func fillReferenceLists(ctx context.Context, remote Remote, data *PageData) {
	if categories, err := remote.ListCategories(ctx); err == nil {
		data.Categories = categories
	}
	if suppliers, err := remote.ListSuppliers(ctx); err == nil {
		data.Suppliers = suppliers
	}
}

func findMedicine(rows []models.Medicine, id string) *models.Medicine {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}

func renderPage(w http.ResponseWriter, r *http.Request, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := MedicinesPage(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render medicines page", http.StatusInternalServerError)
	}
}
