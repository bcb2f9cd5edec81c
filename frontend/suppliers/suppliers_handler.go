package suppliers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"pharmadesk/frontend/shared/listing"
	"pharmadesk/models"
)

// SuppliersPageQueryHandler renders the supplier list, with the modal query
// parameter opening the add or edit form.
func SuppliersPageQueryHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := listing.New(remote.ListSuppliers)
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
			if existing := findSupplier(p.Items, id); existing != nil {
				data.ModalOpen = true
				data.Form = NewForm(existing)
			}
		}

		renderPage(w, r, data)
	}
}

// SaveSupplierCommandHandler rebuilds the form from the posted fields and
// submits it.
func SaveSupplierCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/suppliers?status="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		f := NewForm(nil)
		f.Draft.ID = strings.TrimSpace(r.FormValue("id"))
		for _, name := range []string{"name", "phone", "email", "address"} {
			f = f.SetField(name, r.FormValue(name))
		}

		f, ok := f.Submit(r.Context(), remote)
		if ok {
			http.Redirect(w, r, "/admin/suppliers", http.StatusSeeOther)
			return
		}

		p := listing.New(remote.ListSuppliers)
		p.Load(r.Context())
		renderPage(w, r, PageData{
			Rows:      p.Items,
			Loading:   p.Loading,
			LoadErr:   p.Err,
			ModalOpen: true,
			Form:      f,
		})
	}
}

// DeleteSupplierCommandHandler deletes one row and reloads the list.
func DeleteSupplierCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		p := listing.New(remote.ListSuppliers)
		err := p.Delete(r.Context(), func(ctx context.Context) error {
			return remote.DeleteSupplier(ctx, id)
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

func findSupplier(rows []models.Supplier, id string) *models.Supplier {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}

func renderPage(w http.ResponseWriter, r *http.Request, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := SuppliersPage(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render suppliers page", http.StatusInternalServerError)
	}
}
