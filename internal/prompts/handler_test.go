package prompts_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/frameforge/internal/prompts"
	"github.com/JaimeStill/frameforge/pkg/completion"
	"github.com/JaimeStill/frameforge/pkg/handlers"
	"github.com/JaimeStill/frameforge/pkg/metrics"
	"github.com/JaimeStill/frameforge/pkg/routes"
)

func newMux(client completion.Client, strict bool, maxBody int64) *http.ServeMux {
	sys, _ := newSystem(client, strict)
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(maxBody).Routes())
	return mux
}

func post(t *testing.T, mux http.Handler, path, body string) (int, map[string]string) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var parsed map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&parsed); err != nil {
		t.Fatalf("%s: decode response: %v", path, err)
	}
	return rec.Code, parsed
}

func TestHandlerRoutes(t *testing.T) {
	sys, _ := newSystem(&stubClient{}, false)
	got := sys.Handler(0).Routes().Patterns()

	want := []string{
		"POST /generate",
		"POST /revise",
		"POST /generate-prompt",
		"POST /modify-prompt",
	}
	if len(got) != len(want) {
		t.Fatalf("patterns: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"generate empty input", "/generate", `{"framework":"ICIO","input":""}`},
		{"generate missing framework", "/generate", `{"input":"x"}`},
		{"revise missing original", "/revise", `{"framework":"ICIO","modificationInput":"x"}`},
		{"revise empty object", "/revise", `{}`},
		{"malformed json", "/generate", `{"framework":`},
		{"wrong type", "/generate", `{"framework":1,"input":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{reply: "unused"}
			mux := newMux(client, false, 1<<20)

			status, body := post(t, mux, tt.path, tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", status)
			}
			if body["error"] != prompts.MsgInvalidRequest {
				t.Errorf("error: got %q, want %q", body["error"], prompts.MsgInvalidRequest)
			}
			if _, ok := body["output"]; ok {
				t.Error("error response should not carry output")
			}
			if client.count() != 0 {
				t.Errorf("upstream calls: got %d, want 0", client.count())
			}
		})
	}
}

func TestGenerateEndpointSuccess(t *testing.T) {
	client := &stubClient{reply: "结构化提示词"}
	mux := newMux(client, false, 1<<20)

	status, body := post(t, mux, "/generate", `{"framework":"ICIO","input":"写一篇文章"}`)
	if status != http.StatusOK {
		t.Fatalf("status: got %d, want 200", status)
	}
	if body["output"] != "结构化提示词" {
		t.Errorf("output: got %q", body["output"])
	}
	if _, ok := body["error"]; ok {
		t.Error("success response should not carry error")
	}
}

func TestUpstreamFailureLogsOneError(t *testing.T) {
	var logs strings.Builder
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	sys := prompts.New(&stubClient{err: errors.New("upstream exploded")}, logger, metrics.New("test"), false)
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(1<<20).Routes())

	post(t, mux, "/generate", `{"framework":"ICIO","input":"x"}`)

	if n := strings.Count(logs.String(), "level=ERROR"); n != 1 {
		t.Errorf("error records: got %d, want 1\n%s", n, logs.String())
	}
	if !strings.Contains(logs.String(), "upstream exploded") {
		t.Errorf("cause should be logged: %s", logs.String())
	}
}

func TestEndpointUpstreamFailure(t *testing.T) {
	client := &stubClient{err: errors.New("upstream exploded: sk-secret")}
	mux := newMux(client, false, 1<<20)

	tests := []struct {
		path string
		body string
		want string
	}{
		{"/generate", `{"framework":"ICIO","input":"x"}`, prompts.MsgGenerationFailed},
		{"/revise", `{"framework":"ICIO","originalOutput":"a","modificationInput":"b"}`, prompts.MsgRevisionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := post(t, mux, tt.path, tt.body)
			if status != http.StatusInternalServerError {
				t.Errorf("status: got %d, want 500", status)
			}
			if body["error"] != tt.want {
				t.Errorf("error: got %q, want %q", body["error"], tt.want)
			}
			if strings.Contains(body["error"], "sk-secret") {
				t.Error("upstream detail leaked into response")
			}
		})
	}
}

func TestEndpointStrictUnknownFramework(t *testing.T) {
	client := &stubClient{reply: "ok"}
	mux := newMux(client, true, 1<<20)

	status, body := post(t, mux, "/generate", `{"framework":"RACE","input":"x"}`)
	if status != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", status)
	}
	if body["error"] != prompts.MsgUnknownFramework {
		t.Errorf("error: got %q", body["error"])
	}
	if client.count() != 0 {
		t.Errorf("upstream calls: got %d, want 0", client.count())
	}
}

func TestEndpointBodyTooLarge(t *testing.T) {
	client := &stubClient{reply: "ok"}
	mux := newMux(client, false, 64)

	body := `{"framework":"ICIO","input":"` + strings.Repeat("长", 128) + `"}`
	status, parsed := post(t, mux, "/generate", body)
	if status != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want 413", status)
	}
	if parsed["error"] != prompts.MsgBodyTooLarge {
		t.Errorf("error: got %q", parsed["error"])
	}
	if client.count() != 0 {
		t.Errorf("upstream calls: got %d, want 0", client.count())
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", prompts.ErrInvalidRequest, http.StatusBadRequest},
		{"unknown framework", prompts.ErrUnknownFramework, http.StatusBadRequest},
		{"too large", handlers.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"generation", prompts.ErrGenerationFailed, http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prompts.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

// midjourneyClient answers generation with a fixed prompt and revision by
// appending a lighting clause to whatever original it was handed.
func midjourneyClient(t *testing.T) completion.ClientFunc {
	return func(_ context.Context, messages []completion.Message) (string, error) {
		user := messages[1].Content
		switch {
		case strings.HasPrefix(user, "用户输入: "):
			if user != `用户输入: "一只猫在窗边晒太阳"` {
				t.Errorf("generation input: got %q", user)
			}
			return "镜头：近景，一只猫在窗边晒太阳", nil
		case strings.HasPrefix(user, "原始提示词是："):
			if !strings.Contains(user, "镜头：近景，一只猫在窗边晒太阳") || !strings.Contains(user, "增加黄昏光线") {
				t.Errorf("revision request: got %q", user)
			}
			return "镜头：近景，一只猫在窗边晒太阳，光线：黄昏", nil
		}
		return "", errors.New("unexpected conversation")
	}
}

func TestGenerateThenRevise(t *testing.T) {
	for _, paths := range [][2]string{
		{"/generate", "/revise"},
		{"/generate-prompt", "/modify-prompt"},
	} {
		t.Run(paths[0], func(t *testing.T) {
			mux := newMux(midjourneyClient(t), false, 1<<20)

			status, gen := post(t, mux, paths[0], `{"framework":"Midjourney","input":"一只猫在窗边晒太阳"}`)
			if status != http.StatusOK {
				t.Fatalf("generate status: got %d", status)
			}
			original := gen["output"]
			if !strings.HasPrefix(original, "镜头：近景") {
				t.Fatalf("generate output: got %q", original)
			}

			req, _ := json.Marshal(prompts.ReviseCommand{
				Framework:         "Midjourney",
				OriginalOutput:    original,
				ModificationInput: "增加黄昏光线",
			})

			status, rev := post(t, mux, paths[1], string(req))
			if status != http.StatusOK {
				t.Fatalf("revise status: got %d", status)
			}
			if !strings.Contains(rev["output"], "光线：黄昏") {
				t.Errorf("revise output: got %q", rev["output"])
			}
			if original != "镜头：近景，一只猫在窗边晒太阳" {
				t.Errorf("original output changed: %q", original)
			}
		})
	}
}
