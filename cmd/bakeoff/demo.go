package main

import (
	"context"
	"fmt"

	"github.com/bakeoff-ai/bakeoff/pkg/chat"
	"github.com/bakeoff-ai/bakeoff/pkg/config"
	"github.com/bakeoff-ai/bakeoff/pkg/models"
	"github.com/bakeoff-ai/bakeoff/pkg/prompt"
	"github.com/bakeoff-ai/bakeoff/pkg/token"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		configPath string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run sample queries through a mock client both ways",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			text, err := prompt.LoadFile(cfg.PromptFile)
			if err != nil {
				return err
			}

			queries := cfg.Queries
			if count > 0 && count < len(queries) {
				queries = queries[:count]
			}

			ctx := context.Background()
			complete := chat.Mock(nil)

			var traditionalTotal, bakedTotal int
			for _, q := range queries {
				traditional := chat.SystemThenUser(text, q)
				baked := chat.UserOnly(q)

				resp, err := complete(ctx, traditional)
				if err != nil {
					return err
				}

				tTokens := messageTokens(traditional)
				bTokens := messageTokens(baked)
				traditionalTotal += tTokens
				bakedTotal += bTokens

				fmt.Printf("Query: %s\n", q)
				fmt.Printf("  Response:           %s\n", resp)
				fmt.Printf("  Traditional tokens: %d\n", tTokens)
				fmt.Printf("  Baked tokens:       %d\n\n", bTokens)
			}

			fmt.Printf("Across %d queries: %d traditional vs %d baked input tokens (%d saved)\n",
				len(queries), traditionalTotal, bakedTotal, traditionalTotal-bakedTotal)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to bakeoff config file")
	cmd.Flags().IntVar(&count, "count", 0, "limit the number of sample queries")
	return cmd
}

func messageTokens(messages []models.ChatMessage) int {
	total := 0
	for _, m := range messages {
		total += token.Estimate(m.Content)
	}
	return total
}
