// Package add provides CLI commands for adding resources to the active list.
package add

import "github.com/spf13/cobra"

// Color constants for terminal output.
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
)

// Cmd is the root add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a resource to the active list",
	Long: `Add a file or directory to the currently selected list.

The path is validated when it is added: it must exist and match the
declared kind. It is not re-validated afterwards; a path that vanishes
before backup shows up as a failed entry in the backup report.

Duplicate paths are allowed and create distinct entries.`,
	Example: `  # Track a single file
  backman add file ~/notes.txt

  # Track a directory, copied recursively on backup
  backman add dir ~/documents

  # Track a directory as a single zip archive
  backman add dir ~/projects/site --compress

  See Also:
    backman show - List resources of the active list
    backman del  - Remove a resource by index`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
