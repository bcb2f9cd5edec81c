package intake

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"pharmadesk/frontend/shared/html"
	"pharmadesk/models"
)

// IntakePage renders the receipt editor.
func IntakePage(data EditorPageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderEditorBody(data, html.CSRFField(ctx)))
		return err
	})
	return html.Page("Stock Intake", "/admin/intake", body)
}

// HistoryPage renders the intake history table.
func HistoryPage(data HistoryPageData, now time.Time) templ.Component {
	return html.Page("Intake History", "/admin/intake", templ.Raw(renderHistoryBody(data, now)))
}

func renderEditorBody(data EditorPageData, csrf string) string {
	e := data.Editor
	var b strings.Builder

	b.WriteString(`<div class="page-head"><h2>Stock Intake</h2><a class="btn" href="/admin/intake/history">History</a></div>`)
	if data.Flash != "" {
		b.WriteString(`<div class="banner error">` + templ.EscapeString(data.Flash) + `</div>`)
	}

	b.WriteString(`<form method="post" action="/admin/intake" class="intake-editor">` + csrf)

	b.WriteString(`<label>Supplier<select name="supplierId"><option value="">Choose a supplier</option>`)
	for _, s := range data.Suppliers {
		sel := ""
		if id, err := strconv.ParseInt(s.ID, 10, 64); err == nil && id == e.SupplierID {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + templ.EscapeString(s.ID) + `"` + sel + `>` + templ.EscapeString(s.Name) + `</option>`)
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Intake date<input type="date" name="intakeDate" value="` + templ.EscapeString(e.IntakeDate) + `"></label>`)

	medicines := e.SelectableMedicines(data.Medicines)
	b.WriteString(`<table class="data-table"><thead><tr><th>Medicine</th><th>Quantity</th><th>Unit Cost</th><th>Expiry</th><th></th></tr></thead><tbody>`)
	for i, row := range e.Rows {
		b.WriteString(`<tr><td><select name="medicineId"><option value="">Choose a medicine</option>`)
		for _, m := range medicines {
			sel := ""
			if id, err := strconv.ParseInt(m.ID, 10, 64); err == nil && id == row.MedicineID {
				sel = ` selected`
			}
			b.WriteString(`<option value="` + templ.EscapeString(m.ID) + `"` + sel + `>` + templ.EscapeString(m.Name) + `</option>`)
		}
		b.WriteString(`</select></td>`)
		b.WriteString(fmt.Sprintf(`<td><input type="number" min="1" name="quantity" value="%d"></td>`, row.Quantity))
		b.WriteString(fmt.Sprintf(`<td><input type="number" step="0.01" min="0" name="unitCost" value="%g"></td>`, row.UnitCost))
		b.WriteString(`<td><input type="date" name="expiryDate" value="` + templ.EscapeString(row.Expiry) + `"></td>`)

		removeAttrs := ""
		if len(e.Rows) == 1 {
			removeAttrs = ` disabled`
		}
		b.WriteString(fmt.Sprintf(`<td><button class="btn btn-sm" type="submit" name="action" value="remove_row:%d"%s>Remove</button></td></tr>`, i, removeAttrs))
	}
	b.WriteString(`</tbody></table>`)

	addAttrs := ""
	if !e.CanAddRow() {
		addAttrs = ` disabled`
	}
	b.WriteString(`<div class="editor-actions"><button class="btn" type="submit" name="action" value="add_row"` + addAttrs + `>+ Add Row</button>`)
	b.WriteString(`<button class="btn btn-primary" type="submit" name="action" value="submit">Record Intake</button></div>`)

	if e.Err != "" {
		b.WriteString(`<p class="form-error">` + templ.EscapeString(e.Err) + `</p>`)
	}
	b.WriteString(`</form>`)
	return b.String()
}

func renderHistoryBody(data HistoryPageData, now time.Time) string {
	var b strings.Builder

	b.WriteString(`<div class="page-head"><h2>Intake History</h2><div class="actions"><a class="btn" href="/admin/intake">New Intake</a><a class="btn" href="/admin/intake/history.csv">Export CSV</a><a class="btn" href="/admin/intake/history.pdf">Print PDF</a></div></div>`)
	if data.Flash != "" {
		b.WriteString(`<div class="banner info">` + templ.EscapeString(data.Flash) + `</div>`)
	}

	switch {
	case data.Loading:
		b.WriteString(`<div class="state loading">Loading history...</div>`)
	case data.LoadErr != "":
		b.WriteString(`<div class="state error">` + templ.EscapeString(data.LoadErr) + `</div>`)
	case len(data.Rows) == 0:
		b.WriteString(`<div class="state empty">No intake recorded yet.</div>`)
	default:
		renderHistoryTable(&b, data.Rows, now)
	}
	return b.String()
}

func renderHistoryTable(b *strings.Builder, rows []models.HistoryRow, now time.Time) {
	b.WriteString(`<table class="data-table"><thead><tr><th>Date</th><th>Medicine</th><th>Supplier</th><th>Qty</th><th>Remaining</th><th>Unit Cost</th><th>Expiry</th></tr></thead><tbody>`)
	for _, row := range rows {
		class := ""
		switch {
		case row.Depleted():
			class = ` class="depleted"`
		case row.ExpiringSoon(now):
			class = ` class="expiring"`
		}
		b.WriteString(`<tr` + class + `>`)
		b.WriteString(`<td>` + templ.EscapeString(displayDate(row.IntakeDate)) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(row.MedicineName) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(row.SupplierName) + `</td>`)
		b.WriteString(fmt.Sprintf(`<td class="num">%d</td><td class="num">%d</td><td class="num">%.2f</td>`, row.Quantity, row.Remaining, row.UnitCost))
		b.WriteString(`<td>` + templ.EscapeString(displayDate(row.ExpiryDate)) + `</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

// displayDate shortens backend timestamps to a plain date, passing through
// anything it cannot parse.
func displayDate(value string) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("2006-01-02")
	}
	return value
}
