package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ashdale/stl2obj/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show past conversion runs",
	Long: `Show the journal of past conversion runs.

Without arguments, lists recent runs. With a run ID, shows that run's
per-file results. Requires history.path to be set in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Runs to list")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("history is disabled: set history.path in the config file")
	}

	db, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	store := history.NewStore(db)

	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID: %s", args[0])
		}
		return showRunItems(store, id)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(runs)
		return nil
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	fmt.Printf("  #  │ %-19s │ %-9s │ %s\n", "STARTED", "STATE", "OK/FAIL/CANCEL")
	fmt.Println("─────┼─────────────────────┼───────────┼───────────────")
	for _, r := range runs {
		fmt.Printf(" %3d │ %s │ %-9s │ %d/%d/%d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.State,
			r.Succeeded, r.Failed, r.Cancelled)
	}
	return nil
}

func showRunItems(store *history.Store, id int64) error {
	items, err := store.ListItems(id)
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(items)
		return nil
	}
	if len(items) == 0 {
		fmt.Printf("No items for run %d\n", id)
		return nil
	}

	for _, it := range items {
		switch it.Status {
		case "success":
			fmt.Printf("%3d. %s -> %s (%d verts, %d faces)\n",
				it.Position, it.SourcePath, it.OutputPath, it.VertexCount, it.FaceCount)
		default:
			fmt.Printf("%3d. %s %s: %s\n", it.Position, it.SourcePath, it.Status, it.Message)
		}
	}
	return nil
}
