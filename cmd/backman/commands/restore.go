package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/engine"
	"github.com/nmiranda/backman/internal/errors"
)

func init() {
	rootCmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore [SRC]",
	Short: "Restore the active list from a backup",
	Long: `Copy every resource of the currently selected list back from SRC to
its recorded path, overwriting what is there.

Counterparts inside SRC are matched by base name: a file, a directory, or
a <name>.zip archive for compressed directory resources. A resource whose
counterpart is missing is reported as failed and the rest of the list is
still processed.

SRC defaults to the destination config key, mirroring backup.`,
	Example: `  backman restore /mnt/backups
  backman restore    # uses the configured destination`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

func runRestore(_ *cobra.Command, args []string) error {
	return runRestoreWithWriter(os.Stdout, args)
}

func runRestoreWithWriter(w io.Writer, args []string) error {
	src, err := resolveDir(args, "destination")
	if err != nil {
		return err
	}

	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	l, err := sess.Store.Selected()
	if err != nil {
		return cli.UserErr(err)
	}

	report, err := engine.New().Restore(l, src)
	if err != nil {
		return errors.Wrap(err, "running restore")
	}

	printReport(w, report, "restored")
	if !report.Ok() {
		return errors.NewExitError(
			errors.Newf("%d of %d resources failed", report.Failed(), report.Len()),
			errors.ExitSystem)
	}
	return nil
}
