package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsexpr"
)

func newEvalCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate one expression and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := defaultEnv()
			if envFile != "" {
				if err := loadEnvFile(env, envFile); err != nil {
					return err
				}
			}
			result, err := jsexpr.New(env).Evaluate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&envFile, "env", "e", "", "YAML or JSON file with variable bindings")
	return cmd
}
