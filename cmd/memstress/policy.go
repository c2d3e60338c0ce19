package main

import (
	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/alloc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPolicyCmd())
}

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Describe the global allocator routing policy",
		Long: `The policy command prints the size-class tiers the global allocator
routes requests through, in match order.

Example:
  memstress policy
  memstress policy --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicy()
		},
	}
	return cmd
}

func runPolicy() error {
	tiers := alloc.GlobalPolicy()

	if jsonOut {
		return printJSON(tiers)
	}

	printInfo("Global allocator routing (first match wins):\n\n")
	for _, t := range tiers {
		if t.MaxSize > 0 {
			printInfo("  <= %-8s %s\n", mem.FormatSize(int64(t.MaxSize)), t.Backend)
		} else {
			printInfo("  otherwise   %s\n", t.Backend)
		}
	}
	return nil
}
