package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"panther-newsletter/internal/browser"
	"panther-newsletter/internal/config"
	"panther-newsletter/internal/content"
	"panther-newsletter/internal/images"
	"panther-newsletter/internal/render"

	"github.com/spf13/cobra"
)

var (
	genDataFile  string
	genOutDir    string
	genOpenAfter bool
)

// generateCmd builds the newsletter HTML from a weekly content file.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the newsletter HTML from a weekly content file",
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, err := runGenerate(GetConfig(), genDataFile, genOutDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
		if genOpenAfter {
			browser.Open(outPath)
		}
		return nil
	},
}

// runGenerate executes the pipeline: load content, pick a header
// image, render, and write index.html into outDir. It returns the
// written path. Load and render failures abort the run; directory
// creation is idempotent and an existing index.html is overwritten.
func runGenerate(cfg config.Config, dataFile, outDir string) (string, error) {
	weekly, err := content.Load(dataFile)
	if err != nil {
		return "", err
	}
	slog.Info("generate: content loaded", "file", dataFile, "week", weekly.Week)

	header := images.Choose(weekly.Week, cfg)

	renderer, err := render.New()
	if err != nil {
		return "", err
	}
	html, err := renderer.Render(weekly, cfg, header)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write newsletter: %w", err)
	}
	slog.Info("generate: newsletter written", "path", outPath)
	return outPath, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genDataFile, "data", "", "path to YAML/JSON weekly content")
	generateCmd.Flags().StringVar(&genOutDir, "out", "", "output directory")
	generateCmd.Flags().BoolVar(&genOpenAfter, "open", false, "open output HTML after generating")
	_ = generateCmd.MarkFlagRequired("data")
	_ = generateCmd.MarkFlagRequired("out")
}
