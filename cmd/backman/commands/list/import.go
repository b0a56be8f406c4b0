package list

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/codec"
	"github.com/nmiranda/backman/internal/errors"
)

var importDirect bool

func init() {
	importCmd.Flags().BoolVarP(&importDirect, "direct", "d", false,
		"import without confirmation")
	Cmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Load a list from an exported file",
	Long: `Read a list definition from PATH and append it to the store as a new
list. The encoding is derived from the file extension; unrecognized
extensions fall back to the export.format config key.

A summary of the list is shown and confirmation is asked before importing;
pass -d/--direct to skip the confirmation.`,
	Example: `  backman list import photos.json
  backman list import photos.yaml --direct`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	return runImportWithIO(cmd.InOrStdin(), os.Stdout, args[0])
}

func runImportWithIO(in io.Reader, w io.Writer, path string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	format, ok := codec.FormatFromPath(path)
	if !ok {
		f, err := codec.ParseFormat(viper.GetString("export.format"))
		if err != nil {
			return errors.NewUserError(err, "Check the export.format config key")
		}
		format = f
	}

	l, err := codec.DecodeFile(path, format)
	if err != nil {
		if errors.Is(err, codec.ErrDecode) {
			return errors.NewUserError(err, "The file is not a valid list export")
		}
		return err
	}

	question := fmt.Sprintf("Import list %q with %d resources?", l.Name, l.Len())
	ok, err = cli.Confirm(in, w, question, importDirect)
	if err != nil {
		return errors.Wrap(err, "reading confirmation")
	}
	if !ok {
		fmt.Fprintf(w, "%sImport cancelled.%s\n", colorYellow, colorReset)
		return nil
	}

	idx := sess.Store.Import(l)
	fmt.Fprintf(w, "%s✓ imported list [%d] %q (%d resources)%s\n",
		colorGreen, idx, l.Name, l.Len(), colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}
