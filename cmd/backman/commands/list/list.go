// Package list provides CLI commands for managing backup lists.
package list

import "github.com/spf13/cobra"

// Color constants for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Cmd is the root list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Manage backup lists",
	Long: `Manage named backup lists.

A list is an ordered collection of file and directory resources. Commands
like add, del, show, backup and restore operate on the currently selected
list. Lists are addressed by positional index; indices re-compact when a
list is removed.`,
	Example: `  # Create and select a new list
  backman list create photos
  backman list select 1

  # Show all lists, or one list's resources
  backman list show
  backman list show 0

  # Share a list definition
  backman list export 0 photos.json
  backman list import photos.json

  See Also:
    backman add    - Add resources to the selected list
    backman backup - Back up the selected list`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
