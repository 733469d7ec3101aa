package completion_test

import (
	"testing"

	"github.com/JaimeStill/frameforge/pkg/completion"
)

var testEnv = &completion.Env{
	APIKey:  []string{"TEST_PROVIDER_API_KEY", "TEST_OPENAI_API_KEY"},
	BaseURL: []string{"TEST_PROVIDER_BASE_URL", "TEST_OPENAI_BASE_URL"},
}

func TestFinalizeEmptyKeyAllowed(t *testing.T) {
	cfg := &completion.Config{}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("empty config should finalize: %v", err)
	}
	if cfg.APIKey != "" || cfg.BaseURL != "" {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestFinalizeEnvPrecedence(t *testing.T) {
	t.Setenv("TEST_OPENAI_API_KEY", "fallback")
	t.Setenv("TEST_PROVIDER_API_KEY", "primary")
	t.Setenv("TEST_OPENAI_BASE_URL", "https://proxy.example.com/v1")

	cfg := &completion.Config{APIKey: "from-file"}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.APIKey != "primary" {
		t.Errorf("api key: got %s, want primary", cfg.APIKey)
	}
	if cfg.BaseURL != "https://proxy.example.com/v1" {
		t.Errorf("base url: got %s", cfg.BaseURL)
	}
}

func TestFinalizeInvalidBaseURL(t *testing.T) {
	tests := []string{"not a url", "/relative/path", "://missing"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			cfg := &completion.Config{BaseURL: v}
			if err := cfg.Finalize(nil); err == nil {
				t.Errorf("expected error for base_url %q", v)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := &completion.Config{APIKey: "a", BaseURL: "https://a.example.com"}
	cfg.Merge(&completion.Config{BaseURL: "https://b.example.com"})

	if cfg.APIKey != "a" {
		t.Errorf("api key should be preserved: got %s", cfg.APIKey)
	}
	if cfg.BaseURL != "https://b.example.com" {
		t.Errorf("base url: got %s", cfg.BaseURL)
	}
}
