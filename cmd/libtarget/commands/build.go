package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/libtarget/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entry]",
		Short: "Write the common, umd and umd.min configurations of a library",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			dest, _ := cmd.Flags().GetString("dest")
			watch, _ := cmd.Flags().GetBool("watch")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Entry: entryArg(args),
				Name:  name,
				Dest:  dest,
				Watch: watch,
				Force: force,
			})
		},
	}
	cmd.Flags().StringP("name", "n", "", "Library name (defaults to the package name)")
	cmd.Flags().StringP("dest", "d", "", "Output directory (default \"dist\")")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild when the project sources change")
	cmd.Flags().BoolP("force", "f", false, "Rewrite manifests even when unchanged")
	return cmd
}
