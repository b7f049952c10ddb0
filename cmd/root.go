package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "A terminal work log",
	Long: `worklog records what you worked on and for how long, and lets you
look entries up again by employee, date, time spent or free text.

Usage:
  worklog                      Start the interactive menu
  worklog browse               Browse all entries in a full-screen table
  worklog config               Show the effective configuration
  worklog config --init        Write a sample config file

Entries are kept in a local SQLite file. Use --db to point at another file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runREPL(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database file")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"worklog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runREPL opens the store and runs the interactive menu until the user
// quits or input ends.
func runREPL(cmd *cobra.Command) {
	s, ok := openSession(cmd)
	if !ok {
		return
	}
	defer s.close()

	if err := handlers.Run(s.cliDeps()); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}
