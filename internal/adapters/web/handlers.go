package web

import (
	"context"
	"errors"
	"time"

	"cosmos-daily/internal/domain"
	"cosmos-daily/internal/usecases"
	"cosmos-daily/pkg/log"
	"cosmos-daily/templates/pages"
	"cosmos-daily/templates/partials"
	"cosmos-daily/templates/theme"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Options tunes how views are served.
type Options struct {
	DefaultTheme theme.Theme
	// ViewWait bounds how long /view/:id holds the request open waiting
	// for the fetch to resolve.
	ViewWait time.Duration
	// PollDelay is how long the browser waits before asking again when a
	// view is still loading after ViewWait.
	PollDelay time.Duration
}

// Handlers contains the HTTP handlers for the web application.
type Handlers struct {
	views   *usecases.MountViewUseCase
	limiter *RateLimiter
	opts    Options
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(views *usecases.MountViewUseCase, limiter *RateLimiter, opts Options) *Handlers {
	if opts.DefaultTheme.Name == "" {
		opts.DefaultTheme = theme.Cosmos
	}
	if opts.ViewWait <= 0 {
		opts.ViewWait = 10 * time.Second
	}
	if opts.PollDelay <= 0 {
		opts.PollDelay = time.Second
	}
	return &Handlers{
		views:   views,
		limiter: limiter,
		opts:    opts,
	}
}

// render is a helper to render templ components with a status code.
func render(c *fiber.Ctx, status int, component templ.Component) error {
	return adaptor.HTTPHandler(templ.Handler(component, templ.WithStatus(status)))(c)
}

// themeFor picks the variant named by the theme query parameter.
func (h *Handlers) themeFor(c *fiber.Ctx) theme.Theme {
	return theme.Resolve(c.Query("theme"), h.opts.DefaultTheme)
}

// Home mounts a new view and renders the page with its loading skeleton.
// HTMX then loads the resolved state from /view/:id.
func (h *Handlers) Home(c *fiber.Ctx) error {
	th := h.themeFor(c)

	if !h.limiter.Allow(c.IP()) {
		log.GlobalWarnCtx(c.UserContext(), "mount rate limited", "ip", c.IP())
		return render(c, fiber.StatusTooManyRequests, pages.Error(th, h.friendlyError(domain.ErrRateLimited)))
	}

	id, _ := h.views.Mount(c.UserContext())
	return render(c, fiber.StatusOK, pages.Home(th, id))
}

// View renders the state of a mounted view as an HTMX fragment. It waits
// up to ViewWait for the fetch; if the view is still loading the fragment
// polls again. Unknown views render an alert with status 200 so HTMX swaps it in.
func (h *Handlers) View(c *fiber.Ctx) error {
	th := h.themeFor(c)
	id := c.Params("id")

	vc, err := h.views.Lookup(id)
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "view lookup failed", "mount_id", id, "error", err)
		return render(c, fiber.StatusOK, partials.ViewFragment(th, id, domain.Failed{Message: h.friendlyError(err)}, 0))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.opts.ViewWait)
	defer cancel()

	state, err := vc.Wait(ctx)
	if err != nil {
		log.GlobalDebugCtx(ctx, "view still loading", "mount_id", id)
	}

	return render(c, fiber.StatusOK, partials.ViewFragment(th, id, state, h.opts.PollDelay))
}

// viewResponse is the JSON form of a mounted view.
type viewResponse struct {
	ID string `json:"id"`
	domain.Snapshot
}

// APIView returns a mounted view's state as JSON. With ?wait=true it
// waits like View does.
func (h *Handlers) APIView(c *fiber.Ctx) error {
	id := c.Params("id")

	vc, err := h.views.Lookup(id)
	if err != nil {
		status := fiber.StatusNotFound
		if errors.Is(err, domain.ErrInvalidMountID) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": h.friendlyError(err)})
	}

	state := vc.State()
	if c.QueryBool("wait") {
		ctx, cancel := context.WithTimeout(c.UserContext(), h.opts.ViewWait)
		defer cancel()
		state, _ = vc.Wait(ctx)
	}

	return c.JSON(viewResponse{ID: id, Snapshot: domain.NewSnapshot(state)})
}

// friendlyError returns a neutral, non-blaming error message.
func (h *Handlers) friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, domain.ErrMountNotFound):
		return "This view has expired. Reload the page to see today's picture."
	case errors.Is(err, domain.ErrInvalidMountID):
		return "That doesn't look like a valid view link."
	default:
		return domain.MessageUnknown
	}
}
