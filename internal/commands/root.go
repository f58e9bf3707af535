package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "certportal",
	Short: "Captive portal that walks devices through installing the network root certificate.",
	Long: `certportal serves the landing page, installer artifacts and admin listings for the
network root certificate. Running it without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE:         serveCmd.RunE,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file (defaults and environment only when empty)")
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return rootCmd.Execute()
}
