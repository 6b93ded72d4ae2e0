package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagTag   string
	flagLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Medium articles by keyword or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&flagTag, "tag", "", "Restrict the search to a Medium tag")
	searchCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	results, err := svc.Search(cmd.Context(), args[0], flagTag, flagLimit)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
