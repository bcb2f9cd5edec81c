package html

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/admin/medicines", Label: "Medicines"},
	{Href: "/admin/suppliers", Label: "Suppliers"},
	{Href: "/admin/patients", Label: "Patients"},
	{Href: "/admin/intake", Label: "Intake"},
	{Href: "/admin/diagnostics", Label: "Diagnostics"},
}

// Page wraps body in the shared document chrome with the top navigation.
// active is the href of the current section.
func Page(title, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(templ.EscapeString(title))
		b.WriteString(` - PharmaDesk</title><link rel="stylesheet" href="/assets/app.css"></head><body><nav class="topnav"><span class="brand">PharmaDesk</span>`)
		for _, link := range navLinks {
			class := "navlink"
			if link.Href == active {
				class += " active"
			}
			b.WriteString(`<a class="` + class + `" href="` + link.Href + `">`)
			b.WriteString(templ.EscapeString(link.Label))
			b.WriteString(`</a>`)
		}
		b.WriteString(`</nav><main class="content">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
