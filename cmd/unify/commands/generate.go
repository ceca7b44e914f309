package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the aggregation module from the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			cwd, err := c.workDir()
			if err != nil {
				return err
			}
			return c.app.Generate(cmd.Context(), cwd, force)
		},
	}
	cmd.Flags().Bool("force", false, "Regenerate even when the output is current")
	return cmd
}
