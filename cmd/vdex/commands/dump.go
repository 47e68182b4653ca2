package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vdex/internal/core/domain"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <deps-file>",
		Short: "Print a recorded dependency file in human-readable form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")

			return c.app.Dump(cmd.Context(), manifestPath, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("manifest", "m", domain.ManifestFileName, "Path to the verification manifest")

	return cmd
}
