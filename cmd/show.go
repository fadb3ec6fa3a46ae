package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Chart a food's nutrients against daily targets",
	Long: `Show every nutrient of a food, scaled to the serving size, as a percentage of the
daily target. Food ids are printed by the search command.

Examples:
  nutritrack show 42
  nutritrack show 42 --grams 250 --sex female --weight 60
  nutritrack show 42 --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShowCmd,
}

func init() {
	showCmd.Flags().StringP("format", "f", "chart", "Output format: chart, json or yaml")
	rootCmd.AddCommand(showCmd)
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid food id %q", args[0])
	}

	s, err := newSession(context.Background())
	if err != nil {
		return err
	}
	view, err := s.SelectFood(id)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return writeView(cmd.OutOrStdout(), format, view)
}
