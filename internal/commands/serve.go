package commands

import (
	"fmt"

	"certportal/internal/config"
	"certportal/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portal and, when enabled, the debug server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		srv, err := server.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
