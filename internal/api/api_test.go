package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/JaimeStill/frameforge/internal/api"
	"github.com/JaimeStill/frameforge/internal/config"
	"github.com/JaimeStill/frameforge/internal/infrastructure"
	"github.com/JaimeStill/frameforge/pkg/middleware"
	"github.com/JaimeStill/frameforge/pkg/module"
)

const upstreamBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "model": "gpt-4",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "生成的提示词"}, "finish_reason": "stop"}]
}`

func newConfig(t *testing.T, upstreamURL string) *config.Config {
	t.Helper()

	cfg := &config.Config{Version: "test"}
	cfg.Provider.APIKey = "test-key"
	cfg.Provider.BaseURL = upstreamURL
	if err := cfg.API.Finalize(); err != nil {
		t.Fatalf("finalize api config: %v", err)
	}
	return cfg
}

func newRouter(t *testing.T, status int) (*module.Router, *atomic.Int32) {
	t.Helper()

	calls := new(atomic.Int32)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(upstreamBody))
			return
		}
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := newConfig(t, upstream.URL+"/v1")
	m, err := api.NewModule(cfg, infrastructure.New(cfg))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router, calls
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestModulePrefix(t *testing.T) {
	router, _ := newRouter(t, http.StatusOK)
	if got := router.Prefixes(); len(got) != 1 || got[0] != "/api" {
		t.Errorf("prefixes: got %v", got)
	}
}

func TestGenerateThroughUpstream(t *testing.T) {
	router, calls := newRouter(t, http.StatusOK)

	rec := do(router, "POST", "/api/generate", `{"framework":"BROKE","input":"写周报"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["output"] != "生成的提示词" {
		t.Errorf("output: got %q", body["output"])
	}
	if calls.Load() != 1 {
		t.Errorf("upstream calls: got %d, want 1", calls.Load())
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("response should carry a request id")
	}
}

func TestUpstreamAuthFailureIsGeneric(t *testing.T) {
	router, _ := newRouter(t, http.StatusUnauthorized)

	rec := do(router, "POST", "/api/revise", `{"framework":"ICIO","originalOutput":"a","modificationInput":"b"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "API key") {
		t.Errorf("upstream detail leaked: %s", rec.Body.String())
	}
}

func TestValidationSkipsUpstream(t *testing.T) {
	router, calls := newRouter(t, http.StatusOK)

	rec := do(router, "POST", "/api/generate", `{"framework":"ICIO","input":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	if calls.Load() != 0 {
		t.Errorf("upstream calls: got %d, want 0", calls.Load())
	}
}

func TestFrameworksEndpoint(t *testing.T) {
	router, _ := newRouter(t, http.StatusOK)

	rec := do(router, "GET", "/api/frameworks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var entries []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 5 || entries[0].Name != "CO-STAR" || entries[4].Name != "Midjourney" {
		t.Errorf("catalog: got %+v", entries)
	}
}

func TestOpenAPIDocument(t *testing.T) {
	router, _ := newRouter(t, http.StatusOK)

	rec := do(router, "GET", "/api/openapi.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Info.Title != "Frameforge API" || doc.Info.Version != "test" {
		t.Errorf("info: got %+v", doc.Info)
	}
	for _, path := range []string{"/generate", "/revise", "/generate-prompt", "/modify-prompt", "/frameworks"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}

func TestNewRuntimeScopesLogger(t *testing.T) {
	cfg := newConfig(t, "")
	infra := infrastructure.New(cfg)

	rt := api.NewRuntime(cfg, infra)
	if rt.Logger == infra.Logger {
		t.Error("runtime logger should be scoped, not shared")
	}
	if rt.MaxBodySize != 1<<20 {
		t.Errorf("max body size: got %d", rt.MaxBodySize)
	}
	if rt.Lifecycle != infra.Lifecycle {
		t.Error("runtime should share the lifecycle coordinator")
	}
}

func TestGenerateUnknownFrameworkThroughUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []map[string]any `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		w.Header().Set("Content-Type", "application/json")
		for _, m := range req.Messages {
			if _, ok := m["content"]; !ok {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"message":"Missing required parameter: content","type":"invalid_request_error"}}`))
				return
			}
		}
		w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(upstream.Close)

	cfg := newConfig(t, upstream.URL+"/v1")
	m, err := api.NewModule(cfg, infrastructure.New(cfg))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	router := module.NewRouter()
	router.Mount(m)

	rec := do(router, "POST", "/api/generate", `{"framework":"NOPE","input":"x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["output"] != "生成的提示词" {
		t.Errorf("output: got %q", body["output"])
	}
}
