package html

import (
	"context"

	"github.com/a-h/templ"
)

type csrfTokenKey struct{}

// WithCSRFToken stashes the request's CSRF token so views can render it.
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfTokenKey{}, token)
}

// CSRFField renders the hidden _csrf input every POST form must carry for
// the double-submit check. Empty when no token is in the context.
func CSRFField(ctx context.Context) string {
	token, _ := ctx.Value(csrfTokenKey{}).(string)
	if token == "" {
		return ""
	}
	return `<input type="hidden" name="_csrf" value="` + templ.EscapeString(token) + `">`
}
