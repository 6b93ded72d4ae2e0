package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-hq/medium-reader/internal/domain"
)

var (
	flagNoImages bool
	flagNoCode   bool
	flagBypass   bool
	flagMirror   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <url>",
	Short: "Convert a Medium article URL to Markdown",
	Long: `Convert fetches the article and renders it as a Markdown document.

With --bypass, a paywalled article is retried through mirror services in
order until one returns readable content.

Examples:
  medium-reader convert https://medium.com/@author/post-abc123
  medium-reader convert https://medium.com/@author/post-abc123 --bypass
  medium-reader convert https://medium.com/@author/post-abc123 --bypass --mirror freedium --no-images`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagNoImages, "no-images", false, "Drop image references from the output")
	convertCmd.Flags().BoolVar(&flagNoCode, "no-code", false, "Drop code blocks from the output")
	convertCmd.Flags().BoolVar(&flagBypass, "bypass", false, "Retry through mirror services when the article is paywalled")
	convertCmd.Flags().StringVar(&flagMirror, "mirror", "auto", "Mirror to use with --bypass (a mirror name, or auto for the full fallback order)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	doc, err := svc.Convert(cmd.Context(), args[0], domain.ConversionOptions{
		IncludeImages:     !flagNoImages,
		IncludeCode:       !flagNoCode,
		BypassRestriction: flagBypass,
		PreferredMirror:   flagMirror,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
