package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultConfigDir is where preflight looks for config.yaml when --config is
// not given. A container image typically bakes the file in here.
const DefaultConfigDir = "/etc/preflight"

// Probe and logging defaults. The probe values reproduce the retry behavior
// of the shell entrypoint this tool replaces: 30 attempts, 2 seconds apart,
// for a bounded 60 second worst case.
const (
	DefaultProbeMaxAttempts    = 30
	DefaultProbeInterval       = 2 * time.Second
	DefaultProbeConnectTimeout = 5 * time.Second

	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "text"
	DefaultLogOutput = "stderr"
)

// DefaultMigrateCommand is the migration argv used when none is configured.
var DefaultMigrateCommand = []string{"alembic", "upgrade", "head"}

// GetDefaultConfig returns a fully-defaulted configuration.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any missing fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Probe.MaxAttempts == 0 {
		cfg.Probe.MaxAttempts = DefaultProbeMaxAttempts
	}
	if cfg.Probe.Interval == 0 {
		cfg.Probe.Interval = DefaultProbeInterval
	}
	if cfg.Probe.ConnectTimeout == 0 {
		cfg.Probe.ConnectTimeout = DefaultProbeConnectTimeout
	}

	if cfg.Migrate.Mode == "" {
		cfg.Migrate.Mode = "exec"
	}
	if len(cfg.Migrate.Command) == 0 {
		cfg.Migrate.Command = append([]string(nil), DefaultMigrateCommand...)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = DefaultLogOutput
	}
}

// Validate checks the configuration for consistency. The database URL is
// deliberately not checked here: commands that need it enforce its presence
// themselves so the error carries the configuration exit code.
func Validate(cfg *Config) error {
	if cfg.Probe.MaxAttempts < 1 {
		return fmt.Errorf("probe.max_attempts must be >= 1, got %d", cfg.Probe.MaxAttempts)
	}
	if cfg.Probe.Interval < 0 {
		return fmt.Errorf("probe.interval must not be negative, got %s", cfg.Probe.Interval)
	}
	if cfg.Probe.ConnectTimeout <= 0 {
		return fmt.Errorf("probe.connect_timeout must be positive, got %s", cfg.Probe.ConnectTimeout)
	}

	switch cfg.Migrate.Mode {
	case "exec":
		if len(cfg.Migrate.Command) == 0 {
			return fmt.Errorf("migrate.command is required in exec mode")
		}
	case "builtin":
		if cfg.Migrate.Source == "" {
			return fmt.Errorf("migrate.source is required in builtin mode")
		}
	default:
		return fmt.Errorf("migrate.mode must be \"exec\" or \"builtin\", got %q", cfg.Migrate.Mode)
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", cfg.Logging.Format)
	}

	return nil
}

// sampleConfig is written by "preflight init". Comments double as the
// configuration reference.
const sampleConfig = `# preflight configuration
#
# Every key can be overridden with a PREFLIGHT_ environment variable,
# e.g. PREFLIGHT_PROBE_MAX_ATTEMPTS=60. The database URL is usually supplied
# via DATABASE_URL instead of this file.

database:
  # Connection string for the database the service depends on.
  # url: postgres://app:secret@db:5432/app

probe:
  # Total attempt budget before startup is aborted.
  max_attempts: 30
  # Fixed delay between attempts (no backoff). Worst-case blocking time is
  # max_attempts * interval; budget this against any outer liveness timeout.
  interval: 2s
  # Bound on a single connection attempt.
  connect_timeout: 5s

migrate:
  # "exec" runs an external migration command; "builtin" applies SQL files
  # from a directory using the embedded migrator.
  mode: exec
  command: ["alembic", "upgrade", "head"]
  # source: /app/migrations

logging:
  level: INFO
  format: text
  output: stderr
`

// InitConfig writes the sample configuration to the default location.
// Returns the path written.
func InitConfig(force bool) (string, error) {
	path := filepath.Join(DefaultConfigDir, "config.yaml")
	return path, InitConfigToPath(path, force)
}

// InitConfigToPath writes the sample configuration to the given path.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
