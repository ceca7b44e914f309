package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := c.workDir()
			if err != nil {
				return err
			}
			cfg, err := c.app.Validate(cmd.Context(), cwd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"configuration is valid: package %s, resolver %s\n",
				cfg.PackageName, cfg.Resolver)
			return nil
		},
	}
}
