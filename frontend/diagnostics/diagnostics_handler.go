package diagnostics

import "net/http"

const recentLimit = 100

// DiagnosticsPageQueryHandler renders the newest backend-call failures from
// the local log, newest first.
func DiagnosticsPageQueryHandler(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{}
		rows, err := src.Recent(r.Context(), recentLimit)
		if err != nil {
			data.LoadErr = err.Error()
		} else {
			data.Rows = rows
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := DiagnosticsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render diagnostics page", http.StatusInternalServerError)
		}
	}
}
