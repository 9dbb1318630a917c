package router

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/nineylabs/smart-server/internal/catalog"
	"github.com/nineylabs/smart-server/internal/config"
	"github.com/nineylabs/smart-server/internal/handler"
	"github.com/nineylabs/smart-server/internal/model"
	"github.com/nineylabs/smart-server/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "Niney Life Pickr Smart Server",
			Version:     "1.0.0",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 5000,
		},
		CORS: config.CORSConfig{
			Origins: []string{"http://localhost:3000"},
		},
		API: config.APIConfig{
			Prefix:            "/api",
			DocsEnabled:       true,
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	svc := service.NewService(catalog.New(), model.NewClient())
	return Setup(handler.NewHandler(svc, cfg), cfg)
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(testConfig())

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"health trailing slash", http.MethodGet, "/health/", "", http.StatusOK},
		{"liveness", http.MethodGet, "/health/live", "", http.StatusOK},
		{"readiness", http.MethodGet, "/health/ready", "", http.StatusOK},
		{"predict", http.MethodPost, "/api/ml/predict", `{"data":[{"x":1}]}`, http.StatusOK},
		{"models", http.MethodGet, "/api/ml/models", "", http.StatusOK},
		{"model info", http.MethodGet, "/api/ml/models/default", "", http.StatusOK},
		{"recommendations", http.MethodPost, "/api/recommendations", `{"category":"food"}`, http.StatusOK},
		{"recommendations trailing slash", http.MethodPost, "/api/recommendations/", `{"category":"food"}`, http.StatusOK},
		{"categories", http.MethodGet, "/api/recommendations/categories", "", http.StatusOK},
		{"trending", http.MethodGet, "/api/recommendations/trending", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"swagger ui", http.MethodGet, "/swagger/index.html", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestModelNotFoundThroughStack(t *testing.T) {
	r := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/ml/models/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Detail != "Model 'missing' not found" {
		t.Errorf("unexpected detail %q", resp.Detail)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials allowed, got %q", got)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	r := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on response")
	}
}

func TestLargeResponseCompressed(t *testing.T) {
	r := newTestRouter(testConfig())

	records := make([]string, 60)
	for i := range records {
		records[i] = fmt.Sprintf(`{"feature":"record-%d"}`, i)
	}
	body := `{"data":[` + strings.Join(records, ",") + `]}`

	req := httptest.NewRequest(http.MethodPost, "/api/ml/predict", strings.NewReader(body))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}

	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("creating gzip reader: %v", err)
	}
	defer zr.Close()

	decoded, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompressing body: %v", err)
	}
	if !strings.Contains(string(decoded), `"result":"placeholder"`) {
		t.Error("expected placeholder predictions in decompressed body")
	}
}

func TestSmallResponseUncompressed(t *testing.T) {
	r := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("expected no encoding for small body, got %q", got)
	}
	if rec.Body.String() != `{"status":"alive"}` {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestSwaggerDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.API.DocsEnabled = false
	r := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 when docs disabled, got %d", rec.Code)
	}
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := testConfig()
	cfg.API.RateLimitRequests = 2
	r := newTestRouter(cfg)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/ml/models", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/ml/models", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 after limit, got %d", rec.Code)
	}

	// Health endpoints sit outside the rate-limited API group.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected health to bypass rate limit, got %d", rec.Code)
	}
}
