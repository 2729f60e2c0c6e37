package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/detroitcommercial/microsite/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		cfg     config.Config
	)

	root := &cobra.Command{
		Use:           "microsite",
		Short:         "Brand landing page server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(envFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file applied before reading the environment")

	root.AddCommand(newServeCmd(&cfg), newBuildCmd(&cfg))
	return root
}
