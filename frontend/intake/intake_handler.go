package intake

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pharmadesk/frontend/shared/listing"
)

// IntakePageQueryHandler renders a fresh receipt editor.
func IntakePageQueryHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := EditorPageData{
			Editor: NewEditor(time.Now()),
			Flash:  strings.TrimSpace(r.URL.Query().Get("status")),
		}
		fillReferenceLists(r.Context(), remote, &data)
		renderEditor(w, r, data)
	}
}

// IntakeCommandHandler applies one editor action. The whole editor state
// round-trips through the form on every post: add_row and remove_row
// re-render the adjusted editor, submit posts the receipt and redirects to
// the history on success.
func IntakeCommandHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/intake?status="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		e := editorFromForm(r)
		action := r.FormValue("action")
		switch {
		case action == "add_row":
			e.AddRow()
		case strings.HasPrefix(action, "remove_row:"):
			if i, err := strconv.Atoi(strings.TrimPrefix(action, "remove_row:")); err == nil {
				e.RemoveRow(i)
			}
		case action == "submit":
			if created, ok := e.Submit(r.Context(), remote); ok {
				msg := "Intake recorded"
				if created.ID != "" {
					msg = "Intake recorded: receipt " + created.ID
				}
				http.Redirect(w, r, "/admin/intake/history?status="+url.QueryEscape(msg), http.StatusSeeOther)
				return
			}
		}

		data := EditorPageData{Editor: e}
		fillReferenceLists(r.Context(), remote, &data)
		renderEditor(w, r, data)
	}
}

// HistoryPageQueryHandler renders the intake history table.
func HistoryPageQueryHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := listing.New(remote.ListHistory)
		p.Load(r.Context())

		data := HistoryPageData{
			Rows:    p.Items,
			Loading: p.Loading,
			LoadErr: p.Err,
			Flash:   strings.TrimSpace(r.URL.Query().Get("status")),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := HistoryPage(data, time.Now()).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render intake history page", http.StatusInternalServerError)
		}
	}
}

// ExportHistoryCSVHandler streams the intake history as a CSV download.
func ExportHistoryCSVHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := remote.ListHistory(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="intake-history.csv"`)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"receipt_id", "intake_date", "medicine", "supplier", "quantity", "remaining", "unit_cost", "expiry_date"})
		for _, row := range rows {
			_ = cw.Write([]string{
				row.ReceiptID,
				displayDate(row.IntakeDate),
				row.MedicineName,
				row.SupplierName,
				strconv.FormatInt(row.Quantity, 10),
				strconv.FormatInt(row.Remaining, 10),
				fmt.Sprintf("%.2f", row.UnitCost),
				displayDate(row.ExpiryDate),
			})
		}
		cw.Flush()
	}
}

// PrintHistoryPDFHandler renders the intake history as a printable PDF.
func PrintHistoryPDFHandler(remote Remote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := remote.ListHistory(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		if len(rows) == 0 {
			http.Redirect(w, r, "/admin/intake/history?status="+url.QueryEscape("Nothing to print yet"), http.StatusSeeOther)
			return
		}

		pdfBytes, err := renderHistoryPDF(rows, time.Now())
		if err != nil {
			http.Error(w, "failed to render intake history pdf", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename="intake-history.pdf"`)
		_, _ = w.Write(pdfBytes)
	}
}

// editorFromForm rebuilds the posted editor. Row fields arrive as parallel
// value lists in document order.
func editorFromForm(r *http.Request) *Editor {
	e := NewEditor(time.Now())
	e.SetSupplier(r.FormValue("supplierId"))
	e.SetIntakeDate(r.FormValue("intakeDate"))

	meds := r.Form["medicineId"]
	qtys := r.Form["quantity"]
	costs := r.Form["unitCost"]
	expiries := r.Form["expiryDate"]
	if len(meds) == 0 {
		return e
	}

	e.Rows = make([]Row, len(meds))
	for i := range e.Rows {
		e.Rows[i] = blankRow()
		e.EditRow(i, "medicineId", meds[i])
		if i < len(qtys) {
			e.EditRow(i, "quantity", qtys[i])
		}
		if i < len(costs) {
			e.EditRow(i, "unitCost", costs[i])
		}
		if i < len(expiries) {
			e.EditRow(i, "expiryDate", expiries[i])
		}
	}
	return e
}

func fillReferenceLists(ctx context.Context, remote Remote, data *EditorPageData) {
	if suppliers, err := remote.ListSuppliers(ctx); err == nil {
		data.Suppliers = suppliers
	}
	if medicines, err := remote.ListMedicines(ctx); err == nil {
		data.Medicines = medicines
	}
}

func renderEditor(w http.ResponseWriter, r *http.Request, data EditorPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := IntakePage(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render intake page", http.StatusInternalServerError)
	}
}
