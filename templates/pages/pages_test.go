package pages

import (
	"context"
	"strings"
	"testing"

	"cosmos-daily/templates/theme"
)

func TestHome_RendersSkeletonAndLoadTrigger(t *testing.T) {
	var b strings.Builder

	if err := Home(theme.Cosmos, "m-1").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Cosmos Daily</title>",
		"htmx.org",
		`hx-get="/view/m-1?theme=cosmos"`,
		`hx-trigger="load"`,
		`data-state="loading"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestError_RendersAlert(t *testing.T) {
	var b strings.Builder

	_ = Error(theme.Nebula, "Too many requests").Render(context.Background(), &b)

	if !strings.Contains(b.String(), `role="alert"`) || !strings.Contains(b.String(), "Too many requests") {
		t.Errorf("error page missing alert, got: %s", b.String())
	}
}
