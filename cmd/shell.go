package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/rdi"
	"github.com/JamesBMiddleton/nutritrack/pkg/session"
)

const shellHelp = `Commands:
  search <terms>   search foods and list the results
  select <row>     chart a result row from the last search
  grams <n>        set the serving size in grams
  weight <n>       set bodyweight in kg
  sex <m|f>        set sex for daily targets
  add              add the selected food to the diary
  diary            chart the diary total
  back             go back one screen
  help             show this help
  quit             leave the shell`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session with a diary",
	Long: `Start an interactive session. Search, select foods to chart them, and add them to a
diary that lasts until the shell exits.

` + shellHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(context.Background())
		if err != nil {
			return err
		}
		utils.Log.WithField("session", s.ID).Debug("shell started")
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(in io.Reader, out io.Writer, s *session.Session) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, `Type "help" for commands.`)
	for {
		fmt.Fprintf(out, "%s> ", s.Screen())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch strings.ToLower(name) {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, shellHelp)
		case "search":
			err = writeResults(out, "table", s.Search(arg), true)
		case "select":
			err = shellSelect(out, s, arg)
		case "grams":
			s.SetGrams(arg)
			fmt.Fprintf(out, "grams: %d\n", s.Grams())
		case "weight":
			s.SetWeight(arg)
			fmt.Fprintf(out, "weight: %d kg\n", s.Weight())
		case "sex":
			sex, perr := rdi.ParseSex(arg)
			if perr != nil {
				utils.Log.Warn(perr)
				break
			}
			s.SetSex(sex)
			fmt.Fprintf(out, "sex: %s\n", s.Sex())
		case "add":
			if s.Add() {
				fmt.Fprintf(out, "added %d g\n", s.Grams())
			}
		case "diary":
			if err = writeEntries(out, s.Diary().Entries()); err == nil {
				err = writeView(out, "chart", s.ShowDiary())
			}
		case "back":
			if s.Back() == session.ScreenTable {
				err = writeResults(out, "table", s.Results(), true)
			}
		default:
			fmt.Fprintf(out, "unknown command %q, type \"help\"\n", name)
		}
		if err != nil {
			return err
		}
	}
}

func shellSelect(out io.Writer, s *session.Session, arg string) error {
	row, err := strconv.Atoi(arg)
	if err != nil {
		utils.Log.WithField("row", arg).Warn("select needs a row number")
		return nil
	}
	view, err := s.Select(row)
	if err != nil {
		utils.Log.Warn(err)
		return nil
	}
	return writeView(out, "chart", view)
}
