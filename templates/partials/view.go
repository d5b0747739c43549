// Package partials renders HTMX fragments.
package partials

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"cosmos-daily/internal/domain"
	"cosmos-daily/templates/components"
	"cosmos-daily/templates/theme"
)

// ViewTargetID is the element id the view fragment swaps into.
const ViewTargetID = "apod-view"

// ViewPath returns the fragment URL for a mounted view.
func ViewPath(mountID string, th theme.Theme) string {
	return "/view/" + url.PathEscape(mountID) + "?theme=" + url.QueryEscape(th.Name)
}

// ViewFragment wraps the rendered state in the swap target. While the
// state is Loading the wrapper asks HTMX to fetch /view/{id} after delay;
// a zero delay fetches on load.
func ViewFragment(th theme.Theme, mountID string, state domain.ViewState, delay time.Duration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := fmt.Sprintf(`<div id="%s"`, ViewTargetID)
		if domain.IsLoading(state) {
			trigger := "load"
			if delay > 0 {
				trigger = fmt.Sprintf("load delay:%dms", delay.Milliseconds())
			}
			open += fmt.Sprintf(` hx-get="%s" hx-trigger="%s" hx-swap="outerHTML"`,
				templ.EscapeString(ViewPath(mountID, th)), trigger)
		}
		if _, err := io.WriteString(w, open+">"); err != nil {
			return err
		}
		if err := components.ApodView(th, state).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}
