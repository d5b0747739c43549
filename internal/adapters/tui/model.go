// Package tui implements the Bubble Tea terminal viewer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"cosmos-daily/internal/domain"
	"cosmos-daily/internal/usecases"
	"cosmos-daily/templates/components"
)

const (
	defaultWidth = 72
	maxWidth     = 100
	minWidth     = 24
)

// resolvedMsg carries the view state once the fetch has settled.
type resolvedMsg struct {
	state domain.ViewState
}

// Model renders one ViewController in the terminal.
type Model struct {
	vc      *usecases.ViewController
	spinner spinner.Model
	state   domain.ViewState
	width   int
}

// New creates a Model showing the loading state of vc.
func New(vc *usecases.ViewController) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		vc:      vc,
		spinner: sp,
		state:   domain.Loading{},
		width:   defaultWidth,
	}
}

// Init starts the spinner and waits for the controller to resolve.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitFor(m.vc))
}

func waitFor(vc *usecases.ViewController) tea.Cmd {
	return func() tea.Msg {
		<-vc.Done()
		return resolvedMsg{state: vc.State()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.vc.Cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = max(min(msg.Width, maxWidth), minWidth)
		return m, nil

	case spinner.TickMsg:
		if domain.IsLoading(m.state) {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case resolvedMsg:
		m.state = msg.state
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch s := m.state.(type) {
	case domain.Failed:
		return m.failedView(s.Message)
	case domain.Ready:
		return m.readyView(s.Record)
	default:
		return m.loadingView()
	}
}

// loadingView mirrors the page skeleton: a title bar, a media block and
// three text lines of decreasing width.
func (m Model) loadingView() string {
	w := m.width - 4
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s Loading today's picture...\n\n", m.spinner.View())
	for _, frac := range []float64{0.75, 1, 1, 5.0 / 6, 4.0 / 6} {
		b.WriteString("  " + skeletonStyle.Render(strings.Repeat("▇", int(float64(w)*frac))) + "\n")
	}
	b.WriteString("\n  " + mutedStyle.Render("q to quit") + "\n")
	return b.String()
}

func (m Model) failedView(message string) string {
	box := alertStyle.Width(m.width - 4).Render(sanitize(message))
	return "\n" + indent(box) + "\n\n  " + mutedStyle.Render("q to quit") + "\n"
}

func (m Model) readyView(rec domain.Record) string {
	body := m.width - 4
	var b strings.Builder

	b.WriteString("\n  " + brandStyle.Render(components.BrandTitle) + " " + subtitleStyle.Render(components.BrandSubtitle) + "\n")
	b.WriteString("  " + mutedStyle.Render(components.Tagline) + "\n")
	b.WriteString("  " + dateStyle.Render(domain.FormatDate(rec.Date)) + "\n")

	b.WriteString(indent(titleStyle.Width(body).Render(sanitize(rec.Title))) + "\n")
	b.WriteString("  " + mediaLine(rec) + "\n")

	b.WriteString(indent(headingStyle.Render(components.AboutHeading)) + "\n")
	b.WriteString(indent(mutedStyle.Width(body).Render(sanitize(rec.Explanation))) + "\n\n")

	b.WriteString("  " + mutedStyle.Render(components.FooterText) + "\n")
	return b.String()
}

// mediaLine describes the media block. Terminals cannot show the image or
// the video, so they get a link instead.
func mediaLine(rec domain.Record) string {
	switch rec.MediaType {
	case domain.MediaImage:
		return "Image: " + linkStyle.Render(sanitize(rec.MediaSource()))
	case domain.MediaVideo:
		return "Video: " + linkStyle.Render(sanitize(rec.URL))
	default:
		return mutedStyle.Render("Media type not supported: " + sanitize(string(rec.MediaType)))
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// Run shows vc in the terminal until the user quits or ctx ends.
func Run(ctx context.Context, vc *usecases.ViewController) error {
	_, err := tea.NewProgram(New(vc), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
