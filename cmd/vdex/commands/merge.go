package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vdex/internal/core/domain"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <deps-file>...",
		Short: "Merge dependency files recorded against the same compiled set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			outPath, _ := cmd.Flags().GetString("out")

			return c.app.Merge(cmd.Context(), manifestPath, args, outPath)
		},
	}

	cmd.Flags().StringP("manifest", "m", domain.ManifestFileName, "Path to the verification manifest")
	cmd.Flags().StringP("out", "o", domain.DepsFileName, "Path to write the merged dependency file")

	return cmd
}
