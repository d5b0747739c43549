package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cosmos-daily/test/fixtures"
)

// runApp executes the CLI with args against an isolated environment and
// returns its stdout.
func runApp(t *testing.T, upstream string, args ...string) (string, error) {
	t.Helper()

	for _, name := range []string{"PORT", "APOD_API_KEY", "APOD_TIMEOUT_SECONDS", "COSMOS_THEME",
		"MOUNT_TTL_MINUTES", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(name, "")
	}
	t.Setenv("APOD_ENDPOINT", upstream)

	prev := stderr
	stderr = io.Discard
	t.Cleanup(func() { stderr = prev })

	var out bytes.Buffer
	app := NewApp()
	app.SetOutput(&out)
	app.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := app.ExecuteContext(ctx)
	return out.String(), err
}

func upstream(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestVersionCmd(t *testing.T) {
	out, err := runApp(t, "https://api.nasa.gov/planetary/apod", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "cosmos dev") {
		t.Errorf("output = %q", out)
	}
}

func TestFetchCmd_PrintsReadyState(t *testing.T) {
	url := upstream(t, http.StatusOK, fixtures.ImageRecordWithoutHD())

	out, err := runApp(t, url, "fetch")
	if err != nil {
		t.Fatalf("fetch error = %v", err)
	}

	var got struct {
		State  string `json:"state"`
		Record struct {
			Title string `json:"title"`
			Date  string `json:"date"`
		} `json:"record"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v (%s)", err, out)
	}
	if got.State != "ready" || got.Record.Title != "Test" || got.Record.Date != "2024-06-12" {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestFetchCmd_FailedStateReturnsError(t *testing.T) {
	url := upstream(t, http.StatusInternalServerError, `{}`)

	out, err := runApp(t, url, "fetch")

	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
	if !strings.Contains(err.Error(), "Failed to fetch APOD data") {
		t.Errorf("error should carry the failure message: %v", err)
	}
	if !strings.Contains(out, `"state": "failed"`) {
		t.Errorf("failed state should still be printed: %s", out)
	}
}

func TestFetchCmd_InvalidEndpoint(t *testing.T) {
	_, err := runApp(t, "ftp://example.com", "fetch")
	if err == nil || !strings.Contains(err.Error(), "creating APOD client") {
		t.Errorf("error = %v, want client construction error", err)
	}
}

func TestRoot_InvalidConfigFails(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	app := NewApp()
	app.SetOutput(io.Discard)
	app.SetArgs([]string{"version", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := app.Execute()

	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("error = %v, want config error", err)
	}
}

func TestSweepInterval(t *testing.T) {
	if got := sweepInterval(10 * time.Minute); got != 150*time.Second {
		t.Errorf("sweepInterval(10m) = %v", got)
	}
	if got := sweepInterval(time.Second); got != time.Second {
		t.Errorf("sweepInterval(1s) = %v, want floor of 1s", got)
	}
}
