package config

// BrandConfig holds the newsletter's visual identity.
type BrandConfig struct {
	Name         string `mapstructure:"name"`
	PrimaryColor string `mapstructure:"primary_color"`
	AccentColor  string `mapstructure:"accent_color"`
}

// ProvidersConfig holds optional third-party credentials. A remote
// image provider is usable only when its credential is non-empty.
type ProvidersConfig struct {
	OpenAIAPIKey      string `mapstructure:"openai_api_key"`
	StabilityAPIKey   string `mapstructure:"stability_api_key"`
	ReplicateAPIToken string `mapstructure:"replicate_api_token"`

	PexelsAPIKey       string `mapstructure:"pexels_api_key"`
	PixabayAPIKey      string `mapstructure:"pixabay_api_key"`
	UnsplashAccessKey  string `mapstructure:"unsplash_access_key"`
	OpenclipartBaseURL string `mapstructure:"openclipart_base_url"`

	GiphyAPIKey        string `mapstructure:"giphy_api_key"`
	NewsAPIKey         string `mapstructure:"news_api_key"`
	RedditClientID     string `mapstructure:"reddit_client_id"`
	RedditClientSecret string `mapstructure:"reddit_client_secret"`
}

// Config is the top-level configuration structure. It is built once at
// startup and passed by value; components never read ambient state.
type Config struct {
	Brand     BrandConfig     `mapstructure:"brand"`
	AssetsDir string          `mapstructure:"assets_dir"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.Brand.Name == "" {
		c.Brand.Name = "Glennallen Panthers"
	}
	if c.Brand.PrimaryColor == "" {
		c.Brand.PrimaryColor = "#000000"
	}
	if c.Brand.AccentColor == "" {
		c.Brand.AccentColor = "#C8102E"
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
	if c.Providers.OpenclipartBaseURL == "" {
		c.Providers.OpenclipartBaseURL = "https://openclipart.org"
	}
}
