package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/cli/handlers"
)

var configInitFlag bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or create the configuration file",
	Long: `Display the effective configuration settings for worklog.

Shows the configuration file location, whether it exists, the database that
will be used and every current setting. worklog works without a config
file; all settings have defaults:
  - db_path: (empty, uses the default location)
  - timezone: Local
  - case_sensitive_search: false
  - duration_match: substring
  - clear_screen: true

Configuration file location:
  ~/.config/worklog/config.toml      Linux
  %AppData%\worklog\config.toml      Windows

Use --init to write a commented sample file at that location.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if configInitFlag {
			initConfig(cmd)
			return
		}
		showConfig(cmd)
	},
}

func init() {
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create a sample config file")
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig(cmd *cobra.Command) {
	s, ok := resolveConfig(cmd)
	if !ok {
		return
	}

	flag, _ := cmd.Flags().GetString("db")
	dbPath, err := resolveDBPath(flag, s.cfg)
	if err != nil {
		dbPath = fmt.Sprintf("(unavailable: %v)", err)
	}

	handlers.ShowConfig(configDeps(s), s.configPath, dbPath)
}

// initConfig writes a sample config file without reading the current one
func initConfig(cmd *cobra.Command) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = deps.ConfigPath()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
	}

	handlers.InitConfig(&cli.Deps{
		Stdout: deps.Stdout,
		Stderr: deps.Stderr,
		Stdin:  deps.Stdin,
		Exit:   deps.Exit,
	}, path)
}

func configDeps(s *session) *cli.Deps {
	return &cli.Deps{
		Stdout: deps.Stdout,
		Stderr: deps.Stderr,
		Stdin:  deps.Stdin,
		Exit:   deps.Exit,
		Config: s.cfg,
		Logger: s.logger,
	}
}
