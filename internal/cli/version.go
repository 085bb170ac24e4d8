package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "voronoi %s\ncommit: %s\nbuilt: %s\n", Version, GitCommit, BuildDate)
			return err
		},
	}
}
