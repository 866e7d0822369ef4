package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allergyguard/preflight/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a commented sample configuration file.

By default the file is created at /etc/preflight/config.yaml. Use --config
to choose a different path.

Examples:
  # Initialize at the default location
  preflight init

  # Initialize at a custom path
  preflight init --config ./preflight.yaml

  # Overwrite an existing file
  preflight init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	var configPath string
	var err error

	if configFile != "" {
		err = config.InitConfigToPath(configFile, initForce)
		configPath = configFile
	} else {
		configPath, err = config.InitConfig(initForce)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Set DATABASE_URL (or database.url in the file)")
	fmt.Printf("  2. Use as entrypoint: preflight run --config %s -- <service-command>\n", configPath)
	return nil
}
