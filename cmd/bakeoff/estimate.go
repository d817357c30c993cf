package main

import (
	"fmt"
	"strings"

	"github.com/bakeoff-ai/bakeoff/pkg/prompt"
	"github.com/bakeoff-ai/bakeoff/pkg/token"
	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "estimate [text]",
		Short: "Estimate the token count of a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			switch {
			case file != "":
				var err error
				text, err = prompt.LoadFile(file)
				if err != nil {
					return err
				}
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				return fmt.Errorf("provide text as an argument or use --file")
			}

			fmt.Printf("~%d tokens (%d chars)\n", token.Estimate(text), len(text))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "estimate the contents of a file")
	return cmd
}
