package add

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
	Cmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file PATH",
	Short: "Add a file to the active list",
	Long: `Add a file resource to the currently selected list.

The path must exist and be a regular file.`,
	Example: `  backman add file ~/notes.txt`,
	Args:    cobra.ExactArgs(1),
	RunE:    runFile,
}

func runFile(_ *cobra.Command, args []string) error {
	return runFileWithWriter(os.Stdout, args[0])
}

func runFileWithWriter(w io.Writer, path string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	l, err := sess.Store.Selected()
	if err != nil {
		return cli.UserErr(err)
	}

	res, err := l.AddFile(path)
	if err != nil {
		return cli.UserErr(err)
	}

	fmt.Fprintf(w, "%s✓ added file %q to list %q%s\n",
		colorGreen, res.Name(), l.Name, colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}
