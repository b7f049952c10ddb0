package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse entries in a full-screen table",
	Long: `Open every entry, newest first, in a full-screen table.

Keyboard shortcuts:
  - j/k or arrows: Move between entries
  - d: Delete the highlighted entry (asks for confirmation)
  - r: Reload entries
  - ?: Show help
  - q or Ctrl+C: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runBrowse(cmd)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// runBrowse opens the store and runs the browser
func runBrowse(cmd *cobra.Command) {
	s, ok := openSession(cmd)
	if !ok {
		return
	}
	defer s.close()

	if err := deps.Browse(s.services, s.cfg.Location()); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running browser: %v\n", err)
		deps.Exit(1)
	}
}
