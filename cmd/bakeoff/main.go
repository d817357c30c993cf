package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "bakeoff",
		Short:   "Bakeoff — compare system-prompt costs against prompt-baked models",
		Version: version,
	}

	root.AddCommand(
		newCompareCmd(),
		newEstimateCmd(),
		newHistoryCmd(),
		newBakeCmd(),
		newDemoCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
