package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString("package")
			if err != nil {
				return err
			}
			cwd, err := c.workDir()
			if err != nil {
				return err
			}
			return c.app.Init(cwd, name)
		},
	}
	cmd.Flags().String("package", "workspace-hack", "Name of the generated aggregation module")
	return cmd
}
