package patients

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pharmadesk/frontend/shared/listing"
	"pharmadesk/models"
)

// PatientsPageQueryHandler renders the patient list, with the modal query
// parameter opening the add or edit form.
func PatientsPageQueryHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := listing.New(remote.ListPatients)
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
			data.Form = NewForm(nil, time.Now())
		case "edit":
			id := r.URL.Query().Get("id")
			if existing := findPatient(p.Items, id); existing != nil {
				data.ModalOpen = true
				data.Form = NewForm(existing, time.Now())
			}
		}

		renderPage(w, r, data)
	}
}

// SavePatientCommandHandler rebuilds the form from the posted fields and
// submits it.
func SavePatientCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/patients?status="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		f := NewForm(nil, time.Now())
		f.Draft.ID = strings.TrimSpace(r.FormValue("id"))
		for _, name := range []string{"name", "birthDate", "gender", "phone", "address"} {
			f = f.SetField(name, r.FormValue(name))
		}

		f, ok := f.Submit(r.Context(), remote)
		if ok {
			http.Redirect(w, r, "/admin/patients", http.StatusSeeOther)
			return
		}

		p := listing.New(remote.ListPatients)
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

// DeletePatientCommandHandler deletes one row and reloads the list.
func DeletePatientCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		p := listing.New(remote.ListPatients)
		err := p.Delete(r.Context(), func(ctx context.Context) error {
			return remote.DeletePatient(ctx, id)
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

func findPatient(rows []models.Patient, id string) *models.Patient {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}

func renderPage(w http.ResponseWriter, r *http.Request, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := PatientsPage(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render patients page", http.StatusInternalServerError)
	}
}
