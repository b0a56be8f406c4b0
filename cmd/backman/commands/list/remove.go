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
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Delete a list",
	Long: `Delete the list at INDEX. Subsequent indices shift down by one.

If the removed list was selected, the selection becomes none and implicit
per-list commands fail until another list is selected.`,
	Example: `  backman list remove 2`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	return runRemoveWithWriter(os.Stdout, args[0])
}

func runRemoveWithWriter(w io.Writer, arg string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	idx, err := cli.ParseIndex(arg)
	if err != nil {
		return err
	}

	removed, err := sess.Store.Remove(idx)
	if err != nil {
		return cli.UserErr(err)
	}

	fmt.Fprintf(w, "%s✓ removed list [%d] %q%s\n", colorGreen, idx, removed.Name, colorReset)
	if sess.Store.SelectedIndex() < 0 {
		fmt.Fprintf(w, "%sNo list is selected now. Run 'backman list select <index>'.%s\n",
			colorYellow, colorReset)
	}

	return errors.Wrap(sess.Save(), "saving state")
}
