package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/diary"
	"github.com/JamesBMiddleton/nutritrack/pkg/session"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Total several foods and chart them against daily targets",
	Long: `Add foods to a diary for this run and chart the total. Each --add takes a food id
and an optional whole number of grams; without grams the --grams default is used.

Examples:
  nutritrack diary --add 12:150 --add 40:30 --add 7
  nutritrack diary --add 12:150 --sex female --format json`,
	RunE: runDiaryCmd,
}

func init() {
	diaryCmd.Flags().StringArrayP("add", "a", nil, "Food to add, as <id>[:<grams>] (repeatable)")
	diaryCmd.Flags().StringP("format", "f", "chart", "Output format: chart, json or yaml")
	rootCmd.AddCommand(diaryCmd)
}

func runDiaryCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(context.Background())
	if err != nil {
		return err
	}

	adds, _ := cmd.Flags().GetStringArray("add")
	for _, entry := range adds {
		addToDiary(s, entry)
	}

	format, _ := cmd.Flags().GetString("format")
	view := s.ShowDiary()
	if format != "chart" {
		return writeStructured(cmd.OutOrStdout(), format, struct {
			Entries []diary.Entry `json:"entries" yaml:"entries"`
			View    session.View  `json:"view" yaml:"view"`
		}{s.Diary().Entries(), view})
	}

	if err := writeEntries(cmd.OutOrStdout(), s.Diary().Entries()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return writeView(cmd.OutOrStdout(), format, view)
}

// addToDiary applies one <id>[:<grams>] entry. Malformed entries are logged
// and skipped.
func addToDiary(s *session.Session, entry string) bool {
	idText, gramsText, _ := strings.Cut(entry, ":")
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		utils.Log.WithField("add", entry).Warn("ignoring entry with a non-integer food id")
		return false
	}

	defaultGrams := s.Grams()
	s.SetGrams(gramsText)
	defer s.SetGrams(strconv.Itoa(defaultGrams))

	if _, err := s.SelectFood(id); err != nil {
		utils.Log.WithField("add", entry).WithError(err).Warn("ignoring entry")
		return false
	}
	return s.Add()
}
