package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <module>",
		Short: "Show how a module is treated by the unification plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := c.workDir()
			if err != nil {
				return err
			}
			dep, reason, err := c.app.Explain(cmd.Context(), cwd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dep == nil {
				_, _ = fmt.Fprintf(out, "%s skipped: %s\n", args[0], reason)
				return nil
			}

			_, _ = fmt.Fprintf(out, "%s unified at %s\n", dep.ModulePath.String(), dep.Version)
			for _, m := range dep.Members {
				_, _ = fmt.Fprintf(out, "  required by %s\n", m.String())
			}
			divergent := make([]string, 0, len(dep.Divergent))
			for member := range dep.Divergent {
				divergent = append(divergent, member)
			}
			sort.Strings(divergent)
			for _, member := range divergent {
				_, _ = fmt.Fprintf(out, "  %s diverges at %s\n", member, dep.Divergent[member])
			}
			return nil
		},
	}
}
