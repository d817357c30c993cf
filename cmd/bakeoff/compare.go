package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bakeoff-ai/bakeoff/pkg/compare"
	"github.com/bakeoff-ai/bakeoff/pkg/config"
	"github.com/bakeoff-ai/bakeoff/pkg/models"
	"github.com/bakeoff-ai/bakeoff/pkg/prompt"
	"github.com/bakeoff-ai/bakeoff/pkg/store"
	"github.com/bakeoff-ai/bakeoff/pkg/token"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		configPath string
		promptFile string
		label      string
		jsonOut    string
		save       bool
		userTokens int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare traditional system-prompt costs against a baked model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if promptFile != "" {
				cfg.PromptFile = promptFile
			}
			if cmd.Flags().Changed("user-tokens") {
				cfg.UserQueryTokens = userTokens
			}

			text, err := prompt.LoadFile(cfg.PromptFile)
			if err != nil {
				return err
			}

			calc := compare.New(token.Estimate)
			result, err := calc.Compare(text, cfg.UserQueryTokens, cfg.Pricing)
			if err != nil {
				return err
			}

			run := models.ComparisonRun{
				Label:      label,
				PromptHash: prompt.Hash(text),
				Pricing:    cfg.Pricing,
				Result:     result,
				CreatedAt:  time.Now().UTC(),
			}

			fmt.Print(formatComparisonTable(result))

			if jsonOut != "" {
				if err := store.WriteJSON(jsonOut, run); err != nil {
					return err
				}
				fmt.Printf("Metrics written to %s\n", jsonOut)
			}

			if save {
				st, err := store.New(cfg.DBPath)
				if err != nil {
					return err
				}
				defer func() { _ = st.Close() }()
				id, err := st.Save(context.Background(), run)
				if err != nil {
					return err
				}
				fmt.Printf("Saved as run %d\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to bakeoff config file")
	cmd.Flags().StringVarP(&promptFile, "prompt", "p", "", "system prompt file (overrides config)")
	cmd.Flags().StringVar(&label, "label", "", "label for the saved run")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write metrics JSON to this path")
	cmd.Flags().BoolVar(&save, "save", false, "save the run to the history database")
	cmd.Flags().IntVar(&userTokens, "user-tokens", 0, "user query token estimate (overrides config)")
	return cmd
}

func formatComparisonTable(r models.ComparisonResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-34s %14s %14s %12s\n", "METRIC", "TRADITIONAL", "BAKED", "SAVINGS")
	b.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(&b, "%-34s %14d %14d %12s\n", "System tokens per request",
		r.Traditional.SystemTokens, r.Baked.SystemTokens,
		fmt.Sprintf("%d", r.Traditional.SystemTokens-r.Baked.SystemTokens))
	fmt.Fprintf(&b, "%-34s %14d %14d %11.1f%%\n", "Total tokens per request",
		r.Traditional.TotalTokensPerRequest, r.Baked.TotalTokensPerRequest, r.TokenSavingsPct)
	fmt.Fprintf(&b, "%-34s %14s %14s\n", "Cost per request",
		fmt.Sprintf("$%.6f", r.Traditional.CostPerRequest),
		fmt.Sprintf("$%.6f", r.Baked.CostPerRequest))
	fmt.Fprintf(&b, "%-34s %14s %14s %12s\n", "Cost at volume",
		fmt.Sprintf("$%.2f", r.Traditional.CostPerVolume),
		fmt.Sprintf("$%.2f", r.Baked.CostPerVolume),
		fmt.Sprintf("$%.2f", r.CostSavingsAbsolute))
	fmt.Fprintf(&b, "%-34s %14s %14s %11.1f%%\n", "Latency overhead",
		fmt.Sprintf("%.0fms", r.Traditional.LatencyOverheadMs),
		fmt.Sprintf("%.0fms", r.Baked.LatencyOverheadMs),
		r.LatencyImprovementPct)
	b.WriteString(strings.Repeat("-", 78) + "\n")
	return b.String()
}
