// Package commands implements the jsexpr command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsexpr",
		Short:         "Evaluate JavaScript-subset expressions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newEvalCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jsexpr version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jsexpr %s\n", version)
		},
	}
}

// Execute runs the command tree.
func Execute() error {
	return newRootCmd().Execute()
}
