package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JamesBMiddleton/nutritrack/pkg/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search foods by description",
	Long: `Search foods whose description contains every term, case-sensitively and in any
order. The most complete foods are listed first. Without terms every food is listed.

Examples:
  nutritrack search Milk whole
  nutritrack search --limit 10 Cheese
  nutritrack search --format json Egg`,
	RunE: runSearchCmd,
}

func init() {
	searchCmd.Flags().Int("limit", 0, "Maximum results to print (0 for all)")
	searchCmd.Flags().StringP("format", "f", "table", "Output format: table, json or yaml")
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	table, _, err := loadTables(context.Background())
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	results := search.SearchWithOptions(strings.Join(args, " "), table, search.Options{Limit: limit})
	return writeResults(cmd.OutOrStdout(), format, results, false)
}
