// Package components renders the APOD view for each view state.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"cosmos-daily/internal/domain"
	"cosmos-daily/templates/theme"
)

// Fixed copy.
const (
	BrandTitle      = "COSMOS"
	BrandSubtitle   = "DAILY"
	Tagline         = "Discover the universe, one image at a time"
	AboutHeading    = "About Today's Image"
	FooterText      = "Powered by NASA's Astronomy Picture of the Day API"
	unsupportedText = "Media type not supported: "
)

// ApodView renders state: the skeleton while Loading, an alert when
// Failed, and the full layout when Ready.
func ApodView(th theme.Theme, state domain.ViewState) templ.Component {
	switch s := state.(type) {
	case domain.Failed:
		return ErrorMessage(th, s.Message)
	case domain.Ready:
		return Apod(th, s.Record)
	default:
		return Skeleton(th)
	}
}

// Skeleton renders the loading placeholders: a title block, a media block
// and three text lines of decreasing width.
func Skeleton(th theme.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		block := func(size string) {
			h.raw(`<div data-testid="skeleton"`)
			h.attr("class", "animate-pulse rounded-md "+size+" "+th.Skeleton)
			h.raw(`></div>`)
		}

		h.raw(`<div data-state="loading"`)
		h.attr("class", th.Page+" flex flex-col items-center justify-center p-6")
		h.raw(`><div class="w-full max-w-4xl mx-auto space-y-8">`)
		block("h-12 w-3/4 mx-auto")
		block("h-96 w-full")
		h.raw(`<div class="space-y-4">`)
		block("h-4 w-full")
		block("h-4 w-5/6")
		block("h-4 w-4/6")
		h.raw(`</div></div></div>`)
		return h.err
	})
}

// ErrorMessage renders a single alert box with msg verbatim.
func ErrorMessage(th theme.Theme, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div data-state="failed"`)
		h.attr("class", th.Page+" flex items-center justify-center p-6")
		h.raw(`><div role="alert"`)
		h.attr("class", th.Alert)
		h.raw(`><p data-testid="alert"`)
		h.attr("class", th.AlertText)
		h.raw(`>`)
		h.text(msg)
		h.raw(`</p></div></div>`)
		return h.err
	})
}

// Apod renders the loaded layout for rec.
func Apod(th theme.Theme, rec domain.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div data-state="ready"`)
		h.attr("class", th.Page)
		h.raw(`><div`)
		h.attr("class", th.Container)
		h.raw(`>`)

		writeHeader(h, th, rec.Date)

		h.raw(`<main class="max-w-7xl mx-auto"><div`)
		h.attr("class", th.MediaFrame)
		h.raw(`><div class="relative group bg-black">`)
		writeMedia(h, th, rec)
		h.raw(`<div`)
		h.attr("class", th.Overlay)
		h.raw(`><h2 data-testid="title"`)
		h.attr("class", th.Title)
		h.raw(`>`)
		h.text(rec.Title)
		h.raw(`</h2></div></div></div>`)

		h.raw(`<section`)
		h.attr("class", th.Card)
		h.raw(`><h3`)
		h.attr("class", th.CardHeading)
		h.raw(`>`)
		h.text(AboutHeading)
		h.raw(`</h3><p data-testid="explanation"`)
		h.attr("class", th.CardBody)
		h.raw(`>`)
		h.text(rec.Explanation)
		h.raw(`</p></section></main>`)

		h.raw(`<footer`)
		h.attr("class", th.Footer)
		h.raw(`><p>`)
		h.text(FooterText)
		h.raw(`</p></footer></div></div>`)
		return h.err
	})
}

func writeHeader(h *htmlWriter, th theme.Theme, date string) {
	h.raw(`<header class="text-center mb-20"><h1 class="text-7xl md:text-9xl font-black mb-6 tracking-tight"><span`)
	h.attr("class", th.Brand)
	h.raw(`>`, BrandTitle, `</span><span`)
	h.attr("class", th.Subtitle)
	h.raw(`>`, BrandSubtitle, `</span></h1><p`)
	h.attr("class", th.Tagline)
	h.raw(`>`)
	h.text(Tagline)
	h.raw(`</p><p data-testid="date"`)
	h.attr("class", th.Date)
	h.raw(`>`)
	h.text(domain.FormatDate(date))
	h.raw(`</p></header>`)
}

// writeMedia renders an image, a 16:9 video frame, or the unsupported
// media notice, depending on the record's media type.
func writeMedia(h *htmlWriter, th theme.Theme, rec domain.Record) {
	switch rec.MediaType {
	case domain.MediaImage:
		h.raw(`<img data-testid="media"`)
		h.url("src", rec.MediaSource())
		h.attr("alt", rec.Title)
		h.raw(` class="w-full h-auto object-cover" loading="lazy">`)
	case domain.MediaVideo:
		h.raw(`<div class="relative h-0" style="padding-bottom: 56.25%"><iframe data-testid="media"`)
		h.url("src", rec.URL)
		h.attr("title", rec.Title)
		h.raw(` class="absolute inset-0 w-full h-full" allowfullscreen></iframe></div>`)
	default:
		h.raw(`<div class="p-12 text-center"><p data-testid="unsupported"`)
		h.attr("class", th.Unsupported)
		h.raw(`>`)
		h.text(unsupportedText + string(rec.MediaType))
		h.raw(`</p></div>`)
	}
}
