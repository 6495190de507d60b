package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/courseconnect/backend/internal/bootstrap"
	"github.com/courseconnect/backend/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "production"
	cfg.Web.TemplatesGlob = "../../../web/templates/*.html"
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"

	deps, err := bootstrap.BuildDependencies(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to build dependencies: %v", err)
	}

	return bootstrap.SetupRouter(cfg, deps, zerolog.Nop())
}

func postCourse(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func listCourses(t *testing.T, router *gin.Engine) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var courses []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &courses); err != nil {
		t.Fatalf("failed to decode course list: %v", err)
	}
	return courses
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]string
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestListCourses_Empty(t *testing.T) {
	router := newTestRouter(t)

	courses := listCourses(t, router)
	if len(courses) != 0 {
		t.Errorf("expected 0 courses, got %d", len(courses))
	}
}

func TestCreateCourse_ThenList(t *testing.T) {
	router := newTestRouter(t)

	rr := postCourse(t, router, `{"title":"Algorithms"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created map[string]any
	json.Unmarshal(rr.Body.Bytes(), &created)
	if created["title"] != "Algorithms" {
		t.Errorf("expected title 'Algorithms', got %v", created["title"])
	}
	if created["id"] != float64(1) {
		t.Errorf("expected id 1, got %v", created["id"])
	}

	courses := listCourses(t, router)
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	last := courses[len(courses)-1]
	if last["title"] != "Algorithms" {
		t.Errorf("expected last title 'Algorithms', got %v", last["title"])
	}
}

func TestCreateCourse_SequentialIDs(t *testing.T) {
	router := newTestRouter(t)

	const n = 4
	for i := 0; i < n; i++ {
		rr := postCourse(t, router, `{"title":"Course"}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d", i, rr.Code)
		}
	}

	courses := listCourses(t, router)
	if len(courses) != n {
		t.Fatalf("expected %d courses, got %d", n, len(courses))
	}
	prev := float64(0)
	for _, course := range courses {
		id := course["id"].(float64)
		if id <= prev {
			t.Errorf("IDs not strictly increasing: %v after %v", id, prev)
		}
		prev = id
	}
}

func TestCreateCourse_InvalidTitle(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{}`},
		{"empty title", `{"title":""}`},
		{"whitespace title", `{"title":"   "}`},
		{"malformed json", `{"title":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postCourse(t, router, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}

			var resp map[string]any
			json.Unmarshal(rr.Body.Bytes(), &resp)
			if resp["error"] == nil {
				t.Errorf("expected error detail in response: %s", rr.Body.String())
			}
		})
	}

	// Rejected requests must not mutate the registry
	courses := listCourses(t, router)
	if len(courses) != 0 {
		t.Errorf("expected 0 courses after rejected creates, got %d", len(courses))
	}
}

func TestCreateCourse_Parallel(t *testing.T) {
	router := newTestRouter(t)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			rr := postCourse(t, router, `{"title":"Parallel"}`)
			if rr.Code != http.StatusCreated {
				t.Errorf("expected 201, got %d", rr.Code)
			}
		}()
	}
	wg.Wait()

	courses := listCourses(t, router)
	if len(courses) != workers {
		t.Fatalf("expected %d courses, got %d", workers, len(courses))
	}
	seen := make(map[float64]bool, workers)
	for _, course := range courses {
		id := course["id"].(float64)
		if seen[id] {
			t.Errorf("duplicate ID: %v", id)
		}
		seen[id] = true
	}
}

func TestHomePage(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if body == "" {
		t.Fatal("expected non-empty HTML body")
	}
	if !strings.Contains(body, "CourseConnect") {
		t.Errorf("expected page to mention CourseConnect")
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on response")
	}

	// An incoming ID is echoed back unchanged
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("expected echoed request ID, got %q", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected X-Frame-Options DENY, got %q", got)
	}
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected X-Content-Type-Options nosniff, got %q", got)
	}
}
