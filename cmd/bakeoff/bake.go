package main

import (
	"context"
	"fmt"

	"github.com/bakeoff-ai/bakeoff/pkg/baking"
	"github.com/bakeoff-ai/bakeoff/pkg/config"
	"github.com/bakeoff-ai/bakeoff/pkg/models"
	"github.com/bakeoff-ai/bakeoff/pkg/prompt"
	"github.com/spf13/cobra"
)

func newBakeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bake",
		Short: "Submit the configured prompt to the baking service (mock)",
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

			job := models.BakeJob{
				Name:      cfg.Bake.Name,
				BaseModel: cfg.Bake.BaseModel,
				Prompt:    text,
				Stims:     cfg.Bake.Stims,
				Rollouts:  cfg.Bake.Rollouts,
				Epochs:    cfg.Bake.Epochs,
			}

			ctx := context.Background()
			client := baking.NewMock()

			handle, err := client.Submit(ctx, job)
			if err != nil {
				return err
			}
			status, err := client.Status(ctx, handle.ID)
			if err != nil {
				return err
			}

			fmt.Printf("Submitted bake job %q (base model %s)\n", job.Name, job.BaseModel)
			fmt.Printf("  Handle:      %s\n", handle.ID)
			fmt.Printf("  Baked model: %s\n", handle.BakedModel)
			fmt.Printf("  State:       %s (%d stims, %d rollouts)\n", status.State, status.StimsDone, status.RolloutsDone)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to bakeoff config file")
	return cmd
}
