// Package cli implements the medium-reader commands using Cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/inkwell-hq/medium-reader/internal/app"
	"github.com/inkwell-hq/medium-reader/internal/config"
	"github.com/inkwell-hq/medium-reader/internal/scraper"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "medium-reader",
	Short: "Fetch Medium articles and convert them to Markdown",
	Long: `medium-reader fetches a Medium article, detects paywalled content, and can
retry through mirror services until readable content is obtained. The result
is rendered as a Markdown document with the article metadata up top.

Usage:
  medium-reader convert <url> [flags]
  medium-reader info <url>
  medium-reader search <query> [flags]`,
	SilenceUsage: true,
}

// Execute runs the CLI against the loaded configuration.
func Execute(ctx context.Context, c *config.Config) error {
	cfg = c
	return rootCmd.ExecuteContext(ctx)
}

func newService() (*scraper.Service, error) {
	reader, err := app.NewReader(cfg)
	if err != nil {
		return nil, err
	}
	return reader.Service(), nil
}
