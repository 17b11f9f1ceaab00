package cmd

import (
	"fmt"
	"os"

	"github.com/imagegrid/pexels-proxy/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pexels-proxy",
	Short: "Pexels search proxy server",
	Long: `Pexels Search Proxy - A server-side proxy for the Pexels image search API

The proxy keeps the Pexels API key on the server so it never reaches
client code, forwards search requests upstream, and serves the static
frontend bundle.

Features:
  • Image search via the Pexels API
  • Server-held credential injection
  • Static frontend serving`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Commands that don't touch config (version, help) skip it so a missing
// PEXELS_API_KEY doesn't block printing version information.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
