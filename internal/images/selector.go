package images

import (
	"log/slog"
	"path/filepath"

	"panther-newsletter/internal/config"
)

// Choose picks an image for a topic by walking a prioritized provider
// chain: local assets first, then configured remote backends in a
// fixed order. The first available provider that yields a non-empty
// result wins; if every provider misses, the zero Result is returned
// so templates can omit the image gracefully.
func Choose(topic string, cfg config.Config) Result {
	assets := []string{
		filepath.Join(cfg.AssetsDir, "images", "panther", "header.png"),
		filepath.Join(cfg.AssetsDir, "images", "panther", "badge.png"),
	}
	chain := []Provider{
		NewLocalProvider(assets),
		&remoteProvider{name: "openai", apiKey: cfg.Providers.OpenAIAPIKey},
		&remoteProvider{name: "stability", apiKey: cfg.Providers.StabilityAPIKey},
		&remoteProvider{name: "replicate", apiKey: cfg.Providers.ReplicateAPIToken},
		&remoteProvider{name: "pexels", apiKey: cfg.Providers.PexelsAPIKey},
		&remoteProvider{name: "pixabay", apiKey: cfg.Providers.PixabayAPIKey},
		&remoteProvider{name: "unsplash", apiKey: cfg.Providers.UnsplashAccessKey},
		&remoteProvider{name: "giphy", apiKey: cfg.Providers.GiphyAPIKey},
	}

	req := Request{Prompt: topic}
	for _, p := range chain {
		if !p.Available() {
			continue
		}
		if r := p.Fetch(req); !r.Empty() {
			return r
		}
	}
	slog.Debug("images: no provider produced an image", "topic", topic)
	return Result{}
}
