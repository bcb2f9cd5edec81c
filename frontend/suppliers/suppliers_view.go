package suppliers

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"pharmadesk/frontend/shared/html"
	"pharmadesk/models"
)

// SuppliersPage renders the supplier list with the optional add/edit modal.
func SuppliersPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderBody(data, html.CSRFField(ctx)))
		return err
	})
	return html.Page("Suppliers", "/admin/suppliers", body)
}

func renderBody(data PageData, csrf string) string {
	var b strings.Builder

	b.WriteString(`<div class="page-head"><h2>Suppliers</h2><a class="btn btn-primary" href="/admin/suppliers?modal=add">+ Add Supplier</a></div>`)
	if data.Flash != "" {
		b.WriteString(`<div class="banner error">` + templ.EscapeString(data.Flash) + `</div>`)
	}

	switch {
	case data.Loading:
		b.WriteString(`<div class="state loading">Loading suppliers...</div>`)
	case data.LoadErr != "":
		b.WriteString(`<div class="state error">` + templ.EscapeString(data.LoadErr) + `</div>`)
	case len(data.Rows) == 0:
		b.WriteString(`<div class="state empty">No suppliers yet. Add the first one.</div>`)
	default:
		renderTable(&b, data.Rows, csrf)
	}

	if data.ModalOpen {
		renderModal(&b, data.Form, csrf)
	}
	return b.String()
}

func renderTable(b *strings.Builder, rows []models.Supplier, csrf string) {
	b.WriteString(`<table class="data-table"><thead><tr><th>Name</th><th>Phone</th><th>Email</th><th>Address</th><th></th></tr></thead><tbody>`)
	for _, s := range rows {
		b.WriteString(`<tr><td>` + templ.EscapeString(s.Name) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(s.Phone) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(s.Email) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(s.Address) + `</td>`)
		b.WriteString(`<td class="actions"><a class="btn btn-sm" href="/admin/suppliers?modal=edit&amp;id=` + templ.EscapeString(s.ID) + `">Edit</a>`)
		b.WriteString(`<form method="post" action="/admin/suppliers/delete/` + templ.EscapeString(s.ID) + `" onsubmit="return confirm('Delete this supplier?')">` + csrf + `<button class="btn btn-sm btn-danger" type="submit">Delete</button></form></td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func renderModal(b *strings.Builder, f Form, csrf string) {
	title := "Add Supplier"
	if f.Draft.ID != "" {
		title = "Edit Supplier"
	}

	b.WriteString(`<dialog class="modal" open><div class="modal-box"><h3>` + title + `</h3>`)
	b.WriteString(`<form method="post" action="/admin/suppliers/save">` + csrf)
	b.WriteString(`<input type="hidden" name="id" value="` + templ.EscapeString(f.Draft.ID) + `">`)
	b.WriteString(`<label>Name<input type="text" name="name" value="` + templ.EscapeString(f.Draft.Name) + `"></label>`)
	b.WriteString(`<label>Phone<input type="text" name="phone" value="` + templ.EscapeString(f.Draft.Phone) + `"></label>`)
	b.WriteString(`<label>Email<input type="email" name="email" value="` + templ.EscapeString(f.Draft.Email) + `"></label>`)
	b.WriteString(`<label>Address<input type="text" name="address" value="` + templ.EscapeString(f.Draft.Address) + `"></label>`)

	if f.Err != "" {
		b.WriteString(`<p class="form-error">` + templ.EscapeString(f.Err) + `</p>`)
	}

	b.WriteString(`<div class="modal-action"><a class="btn" href="/admin/suppliers">Cancel</a><button class="btn btn-primary" type="submit">Save</button></div>`)
	b.WriteString(`</form></div></dialog>`)
}
