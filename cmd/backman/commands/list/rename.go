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
	Cmd.AddCommand(renameCmd)
}

var renameCmd = &cobra.Command{
	Use:     "rename INDEX NAME",
	Short:   "Rename a list",
	Example: `  backman list rename 0 documents`,
	Args:    cobra.ExactArgs(2),
	RunE:    runRename,
}

func runRename(_ *cobra.Command, args []string) error {
	return runRenameWithWriter(os.Stdout, args[0], args[1])
}

func runRenameWithWriter(w io.Writer, arg, name string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	idx, err := cli.ParseIndex(arg)
	if err != nil {
		return err
	}

	if err := sess.Store.Rename(idx, name); err != nil {
		return cli.UserErr(err)
	}

	fmt.Fprintf(w, "%s✓ renamed list [%d] to %q%s\n", colorGreen, idx, name, colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}
