package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vdex/internal/app"
	"go.trai.ch/vdex/internal/core/domain"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Verify the compiled set and record its classpath dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			outPath, _ := cmd.Flags().GetString("out")
			workers, _ := cmd.Flags().GetInt("workers")

			return c.app.Record(cmd.Context(), manifestPath, outPath, app.RecordOptions{
				Workers: workers,
			})
		},
	}

	cmd.Flags().StringP("manifest", "m", domain.ManifestFileName, "Path to the verification manifest")
	cmd.Flags().StringP("out", "o", domain.DepsFileName, "Path to write the encoded dependency file")
	cmd.Flags().IntP("workers", "w", 0, "Concurrent class verifications (0 = one per CPU)")

	return cmd
}
