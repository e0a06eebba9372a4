package images

import (
	"path/filepath"
	"testing"

	"panther-newsletter/internal/config"
)

func TestLocalProviderReturnsFirstCandidate(t *testing.T) {
	p := NewLocalProvider([]string{
		"assets/images/panther/header.png",
		"assets/images/panther/badge.png",
	})
	if !p.Available() {
		t.Fatal("local provider should always be available")
	}
	r := p.Fetch(Request{Prompt: "homecoming"})
	if r.Path != "assets/images/panther/header.png" {
		t.Errorf("path = %q, want first candidate", r.Path)
	}
	if r.Attribution != "Local asset" {
		t.Errorf("attribution = %q, want %q", r.Attribution, "Local asset")
	}
	if r.URL != "" {
		t.Errorf("url = %q, want empty", r.URL)
	}
}

func TestLocalProviderDoesNotRequireFileOnDisk(t *testing.T) {
	phantom := filepath.Join(t.TempDir(), "does-not-exist.png")
	r := NewLocalProvider([]string{phantom}).Fetch(Request{})
	if r.Path != phantom {
		t.Errorf("path = %q, want %q even though the file is missing", r.Path, phantom)
	}
}

func TestLocalProviderEmptyCandidates(t *testing.T) {
	r := NewLocalProvider(nil).Fetch(Request{Prompt: "anything"})
	if !r.Empty() {
		t.Errorf("expected empty result, got %+v", r)
	}
}

func TestRemoteProviderGatedOnCredential(t *testing.T) {
	tests := []struct {
		key       string
		available bool
	}{
		{"", false},
		{"sk-test", true},
	}
	for _, tt := range tests {
		p := &remoteProvider{name: "openai", apiKey: tt.key}
		if p.Available() != tt.available {
			t.Errorf("apiKey=%q: Available() = %v, want %v", tt.key, p.Available(), tt.available)
		}
		if r := p.Fetch(Request{Prompt: "pep rally"}); !r.Empty() {
			t.Errorf("apiKey=%q: stub Fetch returned %+v, want empty", tt.key, r)
		}
	}
}

func TestChoosePrefersLocalHeaderAsset(t *testing.T) {
	cfg := config.Config{AssetsDir: "assets"}
	cfg.FillDefaults()

	r := Choose("This Week", cfg)
	want := filepath.Join("assets", "images", "panther", "header.png")
	if r.Path != want {
		t.Errorf("path = %q, want %q", r.Path, want)
	}
	if r.Attribution != "Local asset" {
		t.Errorf("attribution = %q", r.Attribution)
	}
}

func TestChooseIgnoresUnavailableRemotes(t *testing.T) {
	// Remote credentials configured but stubs yield nothing; the local
	// result still wins because local sits first in the chain.
	cfg := config.Config{AssetsDir: "static"}
	cfg.Providers.PexelsAPIKey = "key"
	cfg.FillDefaults()

	r := Choose("science fair", cfg)
	if r.Empty() {
		t.Fatal("expected a local result")
	}
	if r.Path != filepath.Join("static", "images", "panther", "header.png") {
		t.Errorf("path = %q", r.Path)
	}
}
