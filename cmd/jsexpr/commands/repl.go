package commands

import (
	"os"

	"github.com/spf13/cobra"

	"jsexpr/internal/repl"
)

func newReplCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive evaluation loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := defaultEnv()
			if envFile != "" {
				if err := loadEnvFile(env, envFile); err != nil {
					return err
				}
			}
			repl.Start(env, os.Stdin, cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVarP(&envFile, "env", "e", "", "YAML or JSON file with variable bindings")
	return cmd
}
