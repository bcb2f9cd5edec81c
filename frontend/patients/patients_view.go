package patients

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"pharmadesk/frontend/shared/html"
	"pharmadesk/models"
)

// PatientsPage renders the patient list with the optional add/edit modal.
func PatientsPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderBody(data, html.CSRFField(ctx)))
		return err
	})
	return html.Page("Patients", "/admin/patients", body)
}

func renderBody(data PageData, csrf string) string {
	var b strings.Builder

	b.WriteString(`<div class="page-head"><h2>Patients</h2><a class="btn btn-primary" href="/admin/patients?modal=add">+ Add Patient</a></div>`)
	if data.Flash != "" {
		b.WriteString(`<div class="banner error">` + templ.EscapeString(data.Flash) + `</div>`)
	}

	switch {
	case data.Loading:
		b.WriteString(`<div class="state loading">Loading patients...</div>`)
	case data.LoadErr != "":
		b.WriteString(`<div class="state error">` + templ.EscapeString(data.LoadErr) + `</div>`)
	case len(data.Rows) == 0:
		b.WriteString(`<div class="state empty">No patients yet. Add the first one.</div>`)
	default:
		renderTable(&b, data.Rows, csrf)
	}

	if data.ModalOpen {
		renderModal(&b, data.Form, csrf)
	}
	return b.String()
}

func renderTable(b *strings.Builder, rows []models.Patient, csrf string) {
	b.WriteString(`<table class="data-table"><thead><tr><th>Name</th><th>Birth Date</th><th>Gender</th><th>Phone</th><th>Address</th><th></th></tr></thead><tbody>`)
	for _, p := range rows {
		b.WriteString(`<tr><td>` + templ.EscapeString(p.Name) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(p.BirthDate) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(string(p.Gender)) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(p.Phone) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(p.Address) + `</td>`)
		b.WriteString(`<td class="actions"><a class="btn btn-sm" href="/admin/patients?modal=edit&amp;id=` + templ.EscapeString(p.ID) + `">Edit</a>`)
		b.WriteString(`<form method="post" action="/admin/patients/delete/` + templ.EscapeString(p.ID) + `" onsubmit="return confirm('Delete this patient?')">` + csrf + `<button class="btn btn-sm btn-danger" type="submit">Delete</button></form></td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func renderModal(b *strings.Builder, f Form, csrf string) {
	title := "Add Patient"
	if f.Draft.ID != "" {
		title = "Edit Patient"
	}

	b.WriteString(`<dialog class="modal" open><div class="modal-box"><h3>` + title + `</h3>`)
	b.WriteString(`<form method="post" action="/admin/patients/save">` + csrf)
	b.WriteString(`<input type="hidden" name="id" value="` + templ.EscapeString(f.Draft.ID) + `">`)
	b.WriteString(`<label>Name<input type="text" name="name" value="` + templ.EscapeString(f.Draft.Name) + `"></label>`)
	b.WriteString(`<label>Birth date<input type="date" name="birthDate" value="` + templ.EscapeString(f.Draft.BirthDate) + `"></label>`)

	b.WriteString(`<label>Gender<select name="gender">`)
	for _, g := range models.Genders() {
		sel := ""
		if g == f.Draft.Gender {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + string(g) + `"` + sel + `>` + string(g) + `</option>`)
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Phone<input type="text" name="phone" value="` + templ.EscapeString(f.Draft.Phone) + `"></label>`)
	b.WriteString(`<label>Address<input type="text" name="address" value="` + templ.EscapeString(f.Draft.Address) + `"></label>`)

	if f.Err != "" {
		b.WriteString(`<p class="form-error">` + templ.EscapeString(f.Err) + `</p>`)
	}

	b.WriteString(`<div class="modal-action"><a class="btn" href="/admin/patients">Cancel</a><button class="btn btn-primary" type="submit">Save</button></div>`)
	b.WriteString(`</form></div></dialog>`)
}
