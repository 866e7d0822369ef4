package commands

import (
	"fmt"

	"github.com/allergyguard/preflight/internal/exitcode"
	"github.com/allergyguard/preflight/internal/logger"
	"github.com/allergyguard/preflight/pkg/config"
	"github.com/allergyguard/preflight/pkg/migrate"
	"github.com/allergyguard/preflight/pkg/probe"
	"github.com/allergyguard/preflight/pkg/sequence"
)

// loadConfig loads the configuration and initializes the structured logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, &sequence.AbortError{
			State: sequence.StateInit,
			Code:  exitcode.Config,
			Err:   err,
		}
	}

	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

// requireDatabaseURL enforces the presence of the connection descriptor with
// the configuration exit code.
func requireDatabaseURL(cfg *config.Config) *sequence.AbortError {
	if cfg.Database.URL == "" {
		return &sequence.AbortError{
			State: sequence.StateInit,
			Code:  exitcode.Config,
			Err:   fmt.Errorf("database connection string is not set (DATABASE_URL)"),
		}
	}
	return nil
}

// newPinger builds the readiness pinger from configuration.
func newPinger(cfg *config.Config) probe.Pinger {
	return &probe.PostgresPinger{
		URL:            cfg.Database.URL,
		ConnectTimeout: cfg.Probe.ConnectTimeout,
	}
}

// newPolicy builds the probe retry policy from configuration.
func newPolicy(cfg *config.Config) probe.Policy {
	return probe.Policy{
		MaxAttempts: cfg.Probe.MaxAttempts,
		Interval:    cfg.Probe.Interval,
	}
}

// newMigrator builds the configured migration runner.
func newMigrator(cfg *config.Config) migrate.Runner {
	if cfg.Migrate.Mode == "builtin" {
		return &migrate.BuiltinRunner{
			URL:    cfg.Database.URL,
			Source: cfg.Migrate.Source,
		}
	}
	return &migrate.ExecRunner{Argv: cfg.Migrate.Command}
}
