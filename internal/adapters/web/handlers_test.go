package web_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"cosmos-daily/internal/adapters/mounts"
	"cosmos-daily/internal/adapters/nasa"
	"cosmos-daily/internal/adapters/web"
	"cosmos-daily/internal/usecases"
	"cosmos-daily/templates/theme"
	"cosmos-daily/test/fixtures"

	"github.com/gofiber/fiber/v2"
)

var viewPathRe = regexp.MustCompile(`hx-get="(/view/[0-9a-f-]{36})\?theme=(\w+)"`)

type testServer struct {
	app   *fiber.App
	store *mounts.MemoryStore
}

// newTestServer wires the real stack against an upstream that answers
// every request with handler.
func newTestServer(t *testing.T, upstream http.HandlerFunc, limit int) *testServer {
	t.Helper()

	api := httptest.NewServer(upstream)
	t.Cleanup(api.Close)

	client, err := nasa.NewClient(api.URL, nasa.DemoKey)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	store := mounts.NewMemoryStore(time.Minute, time.Minute)
	t.Cleanup(store.Close)

	views := usecases.NewMountViewUseCase(context.Background(), store,
		usecases.NewFetchAPODUseCase(client, 2*time.Second))
	handlers := web.NewHandlers(views, web.NewRateLimiter(limit, time.Minute), web.Options{
		DefaultTheme: theme.Cosmos,
		ViewWait:     2 * time.Second,
		PollDelay:    500 * time.Millisecond,
	})

	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "app.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write static: %v", err)
	}

	return &testServer{app: web.NewApp(handlers, staticDir), store: store}
}

func jsonUpstream(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func (s *testServer) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest("GET", path, nil), 5000)
	if err != nil {
		t.Fatalf("GET %s error = %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// mount loads the home page and returns the fragment path it polls.
func (s *testServer) mount(t *testing.T, query string) (string, string) {
	t.Helper()
	status, body := s.get(t, "/"+query)
	if status != http.StatusOK {
		t.Fatalf("GET / status = %d, body = %s", status, body)
	}
	m := viewPathRe.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("home page has no view trigger: %s", body)
	}
	return m[1], m[2]
}

func TestHome_RendersSkeletonFirst(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	status, body := srv.get(t, "/")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, `data-state="loading"`) {
		t.Error("home page should render the loading state")
	}
	if strings.Count(body, `data-testid="skeleton"`) != 5 {
		t.Errorf("want 5 skeleton blocks, got %d", strings.Count(body, `data-testid="skeleton"`))
	}
	if strings.Contains(body, `data-testid="title"`) || strings.Contains(body, `role="alert"`) {
		t.Error("home page must not render a resolved state")
	}
	if srv.store.Len() != 1 {
		t.Errorf("mounted views = %d, want 1", srv.store.Len())
	}
}

func TestView_SuccessfulFetch_RendersRecord(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)
	path, _ := srv.mount(t, "")

	status, body := srv.get(t, path)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	for _, want := range []string{
		`data-state="ready"`,
		`>Test</h2>`,
		`June 12, 2024`,
		`src="https://x/img.jpg"`,
		`>E</p>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("ready fragment missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "hx-get") {
		t.Error("resolved fragment must not poll again")
	}
}

func TestView_UpstreamError_RendersAlert(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusInternalServerError, `{"error":"boom"}`), 10)
	path, _ := srv.mount(t, "")

	_, body := srv.get(t, path)

	if !strings.Contains(body, "Failed to fetch APOD data") {
		t.Errorf("alert should carry the fetch failure message:\n%s", body)
	}
	if strings.Contains(body, `data-testid="media"`) {
		t.Error("failed view must not render media")
	}
	if strings.Contains(body, "boom") {
		t.Error("upstream body must not leak into the alert")
	}
}

func TestView_MalformedBody_RendersParseMessage(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.MissingTitleRecord()), 10)
	path, _ := srv.mount(t, "")

	_, body := srv.get(t, path)

	if !strings.Contains(body, `data-state="failed"`) || !strings.Contains(body, "missing title") {
		t.Errorf("parse failure should surface its message:\n%s", body)
	}
}

func TestView_StillLoading_PollsAgain(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD())(w, r)
	}, 10)
	// Registered after the upstream so it runs before the upstream closes.
	t.Cleanup(func() { close(release) })

	path, _ := srv.mount(t, "")
	status, body := srv.getWithin(t, path, 3*time.Second)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, `data-state="loading"`) {
		t.Errorf("pending view should render the skeleton:\n%s", body)
	}
	if !strings.Contains(body, `hx-trigger="load delay:500ms"`) {
		t.Errorf("pending view should poll after the delay:\n%s", body)
	}
}

func (s *testServer) getWithin(t *testing.T, path string, limit time.Duration) (int, string) {
	t.Helper()
	start := time.Now()
	status, body := s.get(t, path)
	if elapsed := time.Since(start); elapsed > limit {
		t.Fatalf("GET %s took %v, want under %v", path, elapsed, limit)
	}
	return status, body
}

func TestView_UnknownMount_RendersExpiredAlert(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	status, body := srv.get(t, "/view/6f1c9a52-8a4e-4d0b-9a57-2f5b4a8c1d3e")

	if status != http.StatusOK {
		t.Errorf("status = %d, want 200 so the fragment is swapped in", status)
	}
	if !strings.Contains(body, "This view has expired") {
		t.Errorf("unknown mount should render the expired alert:\n%s", body)
	}
}

func TestView_InvalidMountID_RendersAlert(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	_, body := srv.get(t, "/view/not-a-uuid")

	if !strings.Contains(body, `role="alert"`) {
		t.Errorf("invalid id should render an alert:\n%s", body)
	}
}

func TestHome_ThemeQuery_SelectsVariant(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	path, name := srv.mount(t, "?theme=nebula")
	if name != "nebula" {
		t.Errorf("view trigger theme = %q, want nebula", name)
	}

	_, body := srv.get(t, path+"?theme=nebula")
	if !strings.Contains(body, theme.Nebula.Page) {
		t.Errorf("fragment should use nebula classes:\n%s", body)
	}
}

func TestHome_UnknownTheme_FallsBackToDefault(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	_, name := srv.mount(t, "?theme=plaid")

	if name != theme.Cosmos.Name {
		t.Errorf("theme = %q, want %q", name, theme.Cosmos.Name)
	}
}

func TestHome_RateLimited(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 2)

	srv.get(t, "/")
	srv.get(t, "/")
	status, body := srv.get(t, "/")

	if status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", status)
	}
	if !strings.Contains(body, "Too many requests. Please wait a moment and try again.") {
		t.Errorf("rate limited page should explain itself:\n%s", body)
	}
	if srv.store.Len() != 2 {
		t.Errorf("mounted views = %d, want 2", srv.store.Len())
	}
}

func TestAPIView_ReturnsStateJSON(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)
	path, _ := srv.mount(t, "")
	id := strings.TrimPrefix(path, "/view/")

	status, body := srv.get(t, "/api/view/"+id+"?wait=true")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var got struct {
		ID     string `json:"id"`
		State  string `json:"state"`
		Record struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"record"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode response: %v (%s)", err, body)
	}
	if got.ID != id || got.State != "ready" {
		t.Errorf("got id=%q state=%q, want %q ready", got.ID, got.State, id)
	}
	if got.Record.Title != "Test" || got.Record.URL != "https://x/img.jpg" {
		t.Errorf("record = %+v", got.Record)
	}
}

func TestAPIView_FailedState(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusServiceUnavailable, ""), 10)
	path, _ := srv.mount(t, "")

	_, body := srv.get(t, "/api/view/"+strings.TrimPrefix(path, "/view/")+"?wait=true")

	if !strings.Contains(body, `"state":"failed"`) || !strings.Contains(body, `"message":"Failed to fetch APOD data"`) {
		t.Errorf("unexpected body: %s", body)
	}
	if strings.Contains(body, `"record"`) {
		t.Errorf("failed state must not carry a record: %s", body)
	}
}

func TestAPIView_UnknownAndInvalidIDs(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	if status, _ := srv.get(t, "/api/view/6f1c9a52-8a4e-4d0b-9a57-2f5b4a8c1d3e"); status != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", status)
	}
	if status, _ := srv.get(t, "/api/view/nope"); status != http.StatusBadRequest {
		t.Errorf("invalid id status = %d, want 400", status)
	}
}

func TestStatic_ServesAssets(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	status, body := srv.get(t, "/static/app.css")

	if status != http.StatusOK || body != "body{}" {
		t.Errorf("static asset: status=%d body=%q", status, body)
	}
}

func TestNewApp_SetsRequestID(t *testing.T) {
	srv := newTestServer(t, jsonUpstream(http.StatusOK, fixtures.ImageRecordWithoutHD()), 10)

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/static/app.css", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("responses should carry X-Request-ID")
	}
}
