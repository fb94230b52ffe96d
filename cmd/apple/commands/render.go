package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"apple/internal/domain"
)

func renderCmd() *cobra.Command {
	var (
		owner  string
		color  string
		weight int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print an apple as \"<owner> : <color> : <weight>\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := domain.NewApple()
			flags := cmd.Flags()
			if flags.Changed("owner") {
				a.SetOwner(owner)
			}
			if flags.Changed("color") {
				a.SetColor(color)
			}
			if flags.Changed("weight") {
				a.SetWeight(weight)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a)
			return err
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "apple owner")
	cmd.Flags().StringVar(&color, "color", "", "apple color")
	cmd.Flags().IntVar(&weight, "weight", 0, "apple weight (any integer)")
	return cmd
}
