package images

// Request describes what image is wanted for a topic.
type Request struct {
	Prompt string
	Style  string
	Hint   string
}

// Result is an image reference plus attribution. At most one of
// URL/Path is set on success; a zero Result means "no image found".
type Result struct {
	URL         string
	Path        string
	Attribution string
}

// Empty reports whether the result carries no image.
func (r Result) Empty() bool {
	return r.URL == "" && r.Path == "" && r.Attribution == ""
}

// Provider is a backend capable of supplying an image for a topic.
// Fetch never fails for ordinary "not found" conditions; it returns
// an empty Result instead.
type Provider interface {
	Name() string
	Available() bool
	Fetch(req Request) Result
}

const localAttribution = "Local asset"

// LocalProvider serves images from an ordered list of candidate
// filesystem paths.
type LocalProvider struct {
	searchPaths []string
}

// NewLocalProvider returns a provider over the given candidate paths.
func NewLocalProvider(searchPaths []string) *LocalProvider {
	return &LocalProvider{searchPaths: searchPaths}
}

func (p *LocalProvider) Name() string { return "local" }

// Available always reports true: local assets need no credentials.
func (p *LocalProvider) Available() bool { return true }

// Fetch returns the first candidate path. It deliberately does not
// check that the file exists on disk; callers that need existence
// guarantees must verify themselves.
func (p *LocalProvider) Fetch(req Request) Result {
	if len(p.searchPaths) == 0 {
		return Result{}
	}
	return Result{Path: p.searchPaths[0], Attribution: localAttribution}
}
