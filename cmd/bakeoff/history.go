package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bakeoff-ai/bakeoff/pkg/config"
	"github.com/bakeoff-ai/bakeoff/pkg/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		configPath string
		runID      int64
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved comparison runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			st, err := store.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ctx := context.Background()

			// Single run detail view
			if runID != 0 {
				run, err := st.Get(ctx, runID)
				if err != nil {
					return err
				}
				fmt.Printf("Run %d  %s  prompt %s\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), shortHash(run.PromptHash))
				if run.Label != "" {
					fmt.Printf("Label: %s\n", run.Label)
				}
				fmt.Print(formatComparisonTable(run.Result))
				return nil
			}

			runs, err := st.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No saved runs found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tLABEL\tPROMPT\tSYS TOKENS\tTOKEN SAVINGS\tCOST SAVINGS")
			for _, r := range runs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.1f%%\t$%.2f\n",
					r.ID,
					r.CreatedAt.Format("2006-01-02T15:04:05"),
					defaultStr(r.Label, "-"),
					shortHash(r.PromptHash),
					r.Result.Traditional.SystemTokens,
					r.Result.TokenSavingsPct,
					r.Result.CostSavingsAbsolute)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			total, err := st.TotalSavings(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("\nTotal projected savings across runs: $%.2f\n", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to bakeoff config file")
	cmd.Flags().Int64Var(&runID, "id", 0, "show detail for a specific run")
	cmd.Flags().IntVar(&limit, "limit", 20, "max runs to list (0 for all)")
	return cmd
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
