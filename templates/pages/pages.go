// Package pages renders full HTML documents.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"cosmos-daily/internal/domain"
	"cosmos-daily/templates/components"
	"cosmos-daily/templates/partials"
	"cosmos-daily/templates/theme"
)

const pageTitle = "Cosmos Daily"

// Layout wraps body in the HTML document shell.
func Layout(th theme.Theme, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + pageTitle + `</title>` +
			`<link rel="stylesheet" href="/static/app.css">` +
			`<script src="https://cdn.tailwindcss.com"></script>` +
			`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>` +
			`</head><body data-theme="` + templ.EscapeString(th.Name) + `">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Home renders the page for a freshly mounted view: the loading skeleton,
// which fetches the resolved state on load.
func Home(th theme.Theme, mountID string) templ.Component {
	return Layout(th, partials.ViewFragment(th, mountID, domain.Loading{}, 0))
}

// Error renders a full-page alert.
func Error(th theme.Theme, msg string) templ.Component {
	return Layout(th, components.ErrorMessage(th, msg))
}
