package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/config"
	"github.com/papapumpkin/puzzplan/internal/history"
	"github.com/papapumpkin/puzzplan/internal/ui"
)

var errNoHistory = errors.New("history_db is not configured")

var historyCmd = &cobra.Command{
	Use:   "history [session]",
	Short: "Show recorded placements",
	Long: `Without arguments, lists every session that placed something. With a
session id, lists that session's placements in commit order. --all lists
every placement across sessions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Bool("all", false, "list placements from every session")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		return errNoHistory
	}
	out := ui.NewWithWriter(cmd.OutOrStdout(), cfg.Color)

	ctx := cmd.Context()
	store, err := history.Open(ctx, cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 && !all {
		sessions, err := store.Sessions(ctx)
		if err != nil {
			return err
		}
		out.Sessions(sessions)
		return nil
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	}
	entries, err := store.List(ctx, id)
	if err != nil {
		return err
	}
	out.History(entries)
	return nil
}
