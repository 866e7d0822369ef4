package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allergyguard/preflight/internal/exitcode"
	"github.com/allergyguard/preflight/internal/logger"
	"github.com/allergyguard/preflight/pkg/probe"
	"github.com/allergyguard/preflight/pkg/sequence"
)

var migrateSkipProbe bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply pending database migrations and exit, without starting the
service.

The database is probed first with the configured retry policy; migrations
against an unreachable database are never attempted. Use --skip-probe to run
the migration step directly against a database known to be up.

Examples:
  # Probe, then migrate with the configured runner
  preflight migrate

  # Migrate a known-up database directly
  preflight migrate --skip-probe`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSkipProbe, "skip-probe", false, "Skip the readiness probe before migrating")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if abort := requireDatabaseURL(cfg); abort != nil {
		return abort
	}

	if !migrateSkipProbe {
		attempts, err := probe.Wait(cmd.Context(), newPinger(cfg), newPolicy(cfg), func(attempt int, err error) {
			logger.Warn("Database not ready", logger.Phase("probe"),
				logger.Attempt(attempt), logger.Err(err))
		})
		if err != nil {
			return &sequence.AbortError{
				State: sequence.StateProbing,
				Code:  exitcode.ProbeExhausted,
				Err:   err,
			}
		}
		logger.Info("Database is ready", logger.Phase("probe"), logger.Attempt(attempts))
	}

	if err := newMigrator(cfg).Run(cmd.Context()); err != nil {
		return &sequence.AbortError{
			State: sequence.StateMigrating,
			Code:  exitcode.MigrationFailed,
			Err:   err,
		}
	}

	fmt.Printf("Migrations completed successfully (mode: %s)\n", cfg.Migrate.Mode)
	return nil
}
