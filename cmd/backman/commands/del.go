package commands

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
	rootCmd.AddCommand(delCmd)
}

var delCmd = &cobra.Command{
	Use:   "del INDEX",
	Short: "Remove a resource from the active list",
	Long: `Remove the resource at INDEX from the currently selected list.
Subsequent indices shift down by one.`,
	Example: `  # Remove the second resource
  backman del 1

  See Also:
    backman show - List resources with their indices`,
	Args: cobra.ExactArgs(1),
	RunE: runDel,
}

func runDel(_ *cobra.Command, args []string) error {
	return runDelWithWriter(os.Stdout, args[0])
}

func runDelWithWriter(w io.Writer, arg string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	l, err := sess.Store.Selected()
	if err != nil {
		return cli.UserErr(err)
	}

	idx, err := cli.ParseIndex(arg)
	if err != nil {
		return err
	}

	removed, err := l.Delete(idx)
	if err != nil {
		return cli.UserErr(err)
	}

	fmt.Fprintf(w, "%s✓ removed %s %q from list %q%s\n",
		colorGreen, removed.Kind, removed.Name(), l.Name, colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}
