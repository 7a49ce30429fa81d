package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/libtarget/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [entry]",
		Short: "Print the derived configurations without writing them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			format, _ := cmd.Flags().GetString("format")

			return c.app.Inspect(cmd.Context(), app.InspectOptions{
				Entry:  entryArg(args),
				Name:   name,
				Format: format,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("name", "n", "", "Library name (defaults to the package name)")
	cmd.Flags().StringP("format", "o", "yaml", "Output format: yaml or json")
	return cmd
}
