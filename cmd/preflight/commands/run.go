package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/allergyguard/preflight/internal/logger"
	"github.com/allergyguard/preflight/pkg/config"
	"github.com/allergyguard/preflight/pkg/sequence"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <service-command> [args...]",
	Short: "Run the full startup sequence, then exec the service",
	Long: `Run the full startup sequence: wait for the database, apply pending
migrations, then replace the preflight process with the service command.

Everything after "--" is the service's argument vector and is passed through
unchanged. On success this command does not return: the service takes over
the process and receives signals directly from the container runtime.

The database connection string is read from DATABASE_URL (or
PREFLIGHT_DATABASE_URL / the config file) once at startup.

Examples:
  # Typical container entrypoint
  preflight run -- uvicorn app.main:app --host 0.0.0.0 --port 8000

  # Custom retry budget for a slow database
  PREFLIGHT_PROBE_MAX_ATTEMPTS=60 preflight run -- ./server

Exit codes: 2 configuration missing, 3 database never became reachable,
4 migration failed, 5 service command could not be executed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("Starting preflight sequence",
		"database", config.RedactedURL(cfg.Database.URL),
		"migrate_mode", cfg.Migrate.Mode)

	seq := &sequence.Sequencer{
		URL:      cfg.Database.URL,
		Pinger:   newPinger(cfg),
		Policy:   newPolicy(cfg),
		Migrator: newMigrator(cfg),
		Argv:     args,
	}

	if abort := seq.Run(context.Background()); abort != nil {
		return abort
	}
	// Unreachable after a successful exec.
	return nil
}
