package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vdex/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <deps-file>",
		Short: "Revalidate recorded dependencies against the current classpath",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")

			return c.app.Check(cmd.Context(), manifestPath, args[0])
		},
	}

	cmd.Flags().StringP("manifest", "m", domain.ManifestFileName, "Path to the verification manifest")

	return cmd
}
