package diagnostics

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"pharmadesk/frontend/shared/html"
	"pharmadesk/models"
)

// DiagnosticsPage renders the backend failure log.
func DiagnosticsPage(data PageData) templ.Component {
	return html.Page("Diagnostics", "/admin/diagnostics", templ.Raw(renderBody(data)))
}

func renderBody(data PageData) string {
	var b strings.Builder

	b.WriteString(`<div class="page-head"><h2>Diagnostics</h2></div>`)

	switch {
	case data.LoadErr != "":
		b.WriteString(`<div class="state error">` + templ.EscapeString(data.LoadErr) + `</div>`)
	case len(data.Rows) == 0:
		b.WriteString(`<div class="state empty">No backend failures recorded.</div>`)
	default:
		renderTable(&b, data.Rows)
	}
	return b.String()
}

func renderTable(b *strings.Builder, rows []models.FailureRecord) {
	b.WriteString(`<table class="data-table"><thead><tr><th>Time</th><th>Operation</th><th>Method</th><th>Path</th><th>Status</th><th>Message</th><th>Request ID</th></tr></thead><tbody>`)
	for _, rec := range rows {
		b.WriteString(`<tr><td>` + templ.EscapeString(rec.CreatedAt.UTC().Format("2006-01-02 15:04:05")) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(rec.Op) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(rec.Method) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(rec.Path) + `</td>`)
		b.WriteString(fmt.Sprintf(`<td class="num">%d</td>`, rec.StatusCode))
		b.WriteString(`<td>` + templ.EscapeString(rec.Message) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(rec.RequestID) + `</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}
