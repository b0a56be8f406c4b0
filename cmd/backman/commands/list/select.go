package list

import (
	"fmt"
	"io"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/errors"
	"github.com/nmiranda/backman/internal/list"
)

func init() {
	Cmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select [INDEX]",
	Short: "Set the active list",
	Long: `Make the list at INDEX the target of implicit per-list commands
(add, del, show, backup, restore).

Without an index, an interactive fuzzy picker is shown.`,
	Example: `  # Select list 1
  backman list select 1

  # Pick interactively
  backman list select`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSelect,
}

func runSelect(_ *cobra.Command, args []string) error {
	return runSelectWithWriter(os.Stdout, args)
}

func runSelectWithWriter(w io.Writer, args []string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	var idx int
	if len(args) == 1 {
		idx, err = cli.ParseIndex(args[0])
		if err != nil {
			return err
		}
	} else {
		idx, err = pickList(sess.Store.Summaries())
		if err != nil {
			return err
		}
		if idx < 0 {
			// Picker aborted
			return nil
		}
	}

	if err := sess.Store.Select(idx); err != nil {
		return cli.UserErr(err)
	}

	selected, _ := sess.Store.Get(idx)
	fmt.Fprintf(w, "%s✓ selected list [%d] %q%s\n", colorGreen, idx, selected.Name, colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}

// pickList shows a fuzzy picker over all lists and returns the chosen
// index, or -1 if the user aborted.
func pickList(summaries []list.Summary) (int, error) {
	if len(summaries) == 0 {
		return 0, errors.NewUserError(
			errors.New("no lists to select from"),
			"Run 'backman list create <name>' first")
	}

	idx, err := fuzzyfinder.Find(
		summaries,
		func(i int) string {
			return fmt.Sprintf("[%d] %s (%d resources)",
				summaries[i].Index, summaries[i].Name, summaries[i].ResourceCount)
		},
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return -1, nil
		}
		return 0, errors.Wrap(err, "interactive selection failed")
	}

	return summaries[idx].Index, nil
}
