package medicines

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"pharmadesk/frontend/shared/html"
	"pharmadesk/models"
)

// MedicinesPage renders the medicine list with the optional add/edit modal.
func MedicinesPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderBody(data, html.CSRFField(ctx)))
		return err
	})
	return html.Page("Medicines", "/admin/medicines", body)
}

func renderBody(data PageData, csrf string) string {
	var b strings.Builder

	b.WriteString(`<div class="page-head"><h2>Medicines</h2><a class="btn btn-primary" href="/admin/medicines?modal=add">+ Add Medicine</a></div>`)
	if data.Flash != "" {
		b.WriteString(`<div class="banner error">` + templ.EscapeString(data.Flash) + `</div>`)
	}

	switch {
	case data.Loading:
		b.WriteString(`<div class="state loading">Loading medicines...</div>`)
	case data.LoadErr != "":
		b.WriteString(`<div class="state error">` + templ.EscapeString(data.LoadErr) + `</div>`)
	case len(data.Rows) == 0:
		b.WriteString(`<div class="state empty">No medicines yet. Add the first one.</div>`)
	default:
		renderTable(&b, data.Rows, csrf)
	}

	if data.ModalOpen {
		renderModal(&b, data, csrf)
	}
	return b.String()
}

func renderTable(b *strings.Builder, rows []models.Medicine, csrf string) {
	b.WriteString(`<table class="data-table"><thead><tr><th>Name</th><th>Unit</th><th>Stock</th><th>Purchase Price</th><th>Sale Price</th><th></th></tr></thead><tbody>`)
	for _, m := range rows {
		b.WriteString(`<tr><td>` + templ.EscapeString(m.Name) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(string(m.Unit)) + `</td>`)
		b.WriteString(fmt.Sprintf(`<td class="num">%d</td><td class="num">%.2f</td><td class="num">%.2f</td>`, m.StockOnHand, m.PurchasePrice, m.SalePrice))
		b.WriteString(`<td class="actions"><a class="btn btn-sm" href="/admin/medicines?modal=edit&amp;id=` + templ.EscapeString(m.ID) + `">Edit</a>`)
		b.WriteString(`<form method="post" action="/admin/medicines/delete/` + templ.EscapeString(m.ID) + `" onsubmit="return confirm('Delete this medicine?')">` + csrf + `<button class="btn btn-sm btn-danger" type="submit">Delete</button></form></td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func renderModal(b *strings.Builder, data PageData, csrf string) {
	f := data.Form
	title := "Add Medicine"
	if f.Draft.ID != "" {
		title = "Edit Medicine"
	}

	b.WriteString(`<dialog class="modal" open><div class="modal-box"><h3>` + title + `</h3>`)
	b.WriteString(`<form method="post" action="/admin/medicines/save">` + csrf)
	b.WriteString(`<input type="hidden" name="id" value="` + templ.EscapeString(f.Draft.ID) + `">`)

	b.WriteString(`<label>Name<input type="text" name="name" value="` + templ.EscapeString(f.Draft.Name) + `"></label>`)

	b.WriteString(`<label>Unit<select name="unit">`)
	for _, u := range models.Units() {
		sel := ""
		if u == f.Draft.Unit {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + string(u) + `"` + sel + `>` + string(u) + `</option>`)
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Category<select name="categoryId"><option value="">Choose a category</option>`)
	for _, c := range data.Categories {
		sel := ""
		if c.ID == f.Draft.CategoryID {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + templ.EscapeString(c.ID) + `"` + sel + `>` + templ.EscapeString(c.Name) + `</option>`)
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Supplier<select name="supplierId"><option value="">Choose a supplier</option>`)
	for _, s := range data.Suppliers {
		sel := ""
		if s.ID == f.Draft.SupplierID {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + templ.EscapeString(s.ID) + `"` + sel + `>` + templ.EscapeString(s.Name) + `</option>`)
	}
	b.WriteString(`</select></label>`)

	if f.Draft.ID != "" {
		b.WriteString(`<label>ID<input type="text" value="` + templ.EscapeString(f.Draft.ID) + `" disabled></label>`)
		b.WriteString(fmt.Sprintf(`<label>Stock on hand<input type="text" value="%d" disabled></label>`, f.Draft.StockOnHand))
		b.WriteString(fmt.Sprintf(`<label>Purchase price<input type="text" value="%.2f" disabled></label>`, f.Draft.PurchasePrice))
	}
	b.WriteString(fmt.Sprintf(`<label>Sale price<input type="number" step="0.01" min="0" name="salePrice" value="%g"></label>`, f.Draft.SalePrice))

	if f.Err != "" {
		b.WriteString(`<p class="form-error">` + templ.EscapeString(f.Err) + `</p>`)
	}

	b.WriteString(`<div class="modal-action"><a class="btn" href="/admin/medicines">Cancel</a><button class="btn btn-primary" type="submit">Save</button></div>`)
	b.WriteString(`</form></div></dialog>`)
}
