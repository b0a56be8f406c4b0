package list

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/errors"
)

func init() {
	Cmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new empty list",
	Long: `Create a new empty list with the given name and append it to the store.

Names need not be unique; lists are addressed by index.`,
	Example: `  # Create a list for photo backups
  backman list create photos

  See Also:
    backman list select - Make a list the active one`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(_ *cobra.Command, args []string) error {
	return runCreateWithWriter(os.Stdout, args[0])
}

func runCreateWithWriter(w io.Writer, name string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	idx := sess.Store.Create(name)
	fmt.Fprintf(w, "%s✓ created list [%d] %q%s\n", colorGreen, idx, name, colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}
