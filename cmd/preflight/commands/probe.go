package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/allergyguard/preflight/internal/exitcode"
	"github.com/allergyguard/preflight/internal/logger"
	"github.com/allergyguard/preflight/pkg/config"
	"github.com/allergyguard/preflight/pkg/probe"
	"github.com/allergyguard/preflight/pkg/sequence"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Wait for the database to become reachable, then exit",
	Long: `Wait for the database to become reachable using the configured retry
policy, then exit. No migrations are applied and no service is started.

Useful as a Kubernetes initContainer or for debugging connectivity from
inside the service's network namespace.

Examples:
  # Wait with the default policy (30 attempts, 2s apart, 60s worst case)
  preflight probe

  # A single quick check
  PREFLIGHT_PROBE_MAX_ATTEMPTS=1 preflight probe`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if abort := requireDatabaseURL(cfg); abort != nil {
		return abort
	}

	logger.Info("Waiting for database", logger.Phase("probe"),
		"database", config.RedactedURL(cfg.Database.URL),
		logger.MaxAttempts(cfg.Probe.MaxAttempts), "interval", cfg.Probe.Interval)

	start := time.Now()
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

	logger.Info("Database is ready", logger.Phase("probe"),
		logger.Attempt(attempts), "elapsed", time.Since(start))
	return nil
}
