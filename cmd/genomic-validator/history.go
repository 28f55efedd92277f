package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/farmerpiki/genomic-validator/internal/history"
	"github.com/farmerpiki/genomic-validator/internal/output"
)

func (a *app) newHistoryCmd() *cobra.Command {
	var (
		limit     int
		clearRuns bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded validation runs",
		Long: `List validation runs recorded with --history (or history.enabled in the
config file), newest first.`,
		Example: `  genomic-validator history
  genomic-validator history --limit 50
  genomic-validator history --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return usageError{fmt.Errorf("--limit must be positive, got %d", limit)}
			}
			return a.runHistory(limit, clearRuns)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&clearRuns, "clear", false, "Delete all recorded runs")

	return cmd
}

func (a *app) runHistory(limit int, clearRuns bool) error {
	dbPath, err := a.historyPath()
	if err != nil {
		return err
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if clearRuns {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintf(a.stdout, "Cleared history in %s\n", store.Path())
		return nil
	}

	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	w := output.NewHistoryWriter(a.stdout)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, r := range runs {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return w.Flush()
}
