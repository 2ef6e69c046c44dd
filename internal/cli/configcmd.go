package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffwin/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force, stdout bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				return config.Default().Encode(cmd.OutOrStdout())
			}
			path := a.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&stdout, "stdout", false, "Print the defaults instead of writing a file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show which configuration file is used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if cfg.Source == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (not found, using defaults)\n", config.DefaultPath())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Source)
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
