// Package commands implements the preflight CLI.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allergyguard/preflight/internal/exitcode"
	"github.com/allergyguard/preflight/pkg/sequence"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "preflight",
	Short: "preflight - container startup gate for database-backed services",
	Long: `preflight runs as a container entrypoint in front of a PostgreSQL-backed
service. Before handing control to the service it waits for the database to
become reachable and applies pending schema migrations; only then does it
exec the service command, which inherits the process identity and receives
signals directly from the container runtime.

Use "preflight [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits the process with the appropriate code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var abort *sequence.AbortError
		if errors.As(err, &abort) {
			os.Exit(abort.Code)
		}
		os.Exit(exitcode.Usage)
	}
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: /etc/preflight/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// GetConfigFile returns the config file path from the global flag.
func GetConfigFile() string {
	return cfgFile
}
