package images

import "log/slog"

// remoteProvider is a placeholder for a credentialed image backend
// (stock-photo search or AI generation). Availability gating is real;
// the actual API call is not wired up yet, so Fetch always reports
// "no image found" and the selector moves on.
type remoteProvider struct {
	name   string
	apiKey string
}

func (p *remoteProvider) Name() string { return p.name }

// Available reports whether the provider's credential is configured.
func (p *remoteProvider) Available() bool { return p.apiKey != "" }

func (p *remoteProvider) Fetch(req Request) Result {
	slog.Debug("images: remote provider not implemented, skipping", "provider", p.name, "prompt", req.Prompt)
	return Result{}
}
