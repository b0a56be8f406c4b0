package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/engine"
	"github.com/nmiranda/backman/internal/errors"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup [DEST]",
	Short: "Back up the active list",
	Long: `Copy every resource of the currently selected list into DEST.

Files are copied under their base name, directories are copied recursively,
and directories flagged with --compress become a single zip archive.
Existing files at the destination are overwritten.

The pass is best-effort: a failure on one resource is reported and the
rest of the list is still processed. The command exits non-zero if any
resource failed.

DEST defaults to the destination config key.`,
	Example: `  backman backup /mnt/backups
  backman backup    # uses the configured destination`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackup,
}

func runBackup(_ *cobra.Command, args []string) error {
	return runBackupWithWriter(os.Stdout, args)
}

func runBackupWithWriter(w io.Writer, args []string) error {
	dest, err := resolveDir(args, "destination")
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

	report, err := engine.New().Backup(l, dest)
	if err != nil {
		return errors.Wrap(err, "running backup")
	}

	printReport(w, report, "backed up")
	if !report.Ok() {
		return errors.NewExitError(
			errors.Newf("%d of %d resources failed", report.Failed(), report.Len()),
			errors.ExitSystem)
	}
	return nil
}

// resolveDir returns the directory argument, falling back to the named
// config key when no argument was given.
func resolveDir(args []string, configKey string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	dir := viper.GetString(configKey)
	if dir == "" {
		return "", errors.NewUserError(
			errors.Newf("no directory given and %s is not configured", configKey),
			"Pass a directory argument or set the "+configKey+" config key")
	}
	return dir, nil
}
