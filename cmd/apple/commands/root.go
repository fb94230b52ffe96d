package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the apple command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "apple",
		Short:        "Build and render Apple records",
		SilenceUsage: true,
	}
	root.AddCommand(renderCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
