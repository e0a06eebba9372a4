package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"panther-newsletter/internal/config"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "panther-newsletter",
	Short: "Glennallen Panthers Newsletter Generator",
	Long:  "Generates a static HTML newsletter from a weekly content file (YAML or JSON).",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

// envBindings maps config keys to the environment variables that
// override them. Names follow the historical deployment surface.
var envBindings = map[string]string{
	"brand.name":                     "BRAND_NAME",
	"brand.primary_color":            "PRIMARY_COLOR",
	"brand.accent_color":             "ACCENT_COLOR",
	"assets_dir":                     "ASSETS_DIR",
	"providers.openai_api_key":       "OPENAI_API_KEY",
	"providers.stability_api_key":    "STABILITY_AI_API_KEY",
	"providers.replicate_api_token":  "REPLICATE_API_TOKEN",
	"providers.pexels_api_key":       "PEXELS_API_KEY",
	"providers.pixabay_api_key":      "PIXABAY_API_KEY",
	"providers.unsplash_access_key":  "UNSPLASH_ACCESS_KEY",
	"providers.openclipart_base_url": "OPENCLIPART_BASE_URL",
	"providers.giphy_api_key":        "GIPHY_API_KEY",
	"providers.news_api_key":         "NEWS_API_KEY",
	"providers.reddit_client_id":     "REDDIT_CLIENT_ID",
	"providers.reddit_client_secret": "REDDIT_CLIENT_SECRET",
}

func initConfig() {
	v := viper.GetViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "panther-newsletter"))
		v.AddConfigPath("configs")
	}

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	}

	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}
