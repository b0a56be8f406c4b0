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

var exportFormat string

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "",
		"interchange format: json, yaml, toml (default: by extension)")
	Cmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export INDEX PATH",
	Short: "Serialize a list to a file",
	Long: `Write the list at INDEX to PATH as a standalone definition:
its name plus the ordered resources (path, kind, compress).

The encoding is derived from the file extension (.json, .yaml, .toml);
--format overrides it, and the export.format config key is the fallback
for unrecognized extensions. The exported file does not contain backup
data, only the list definition.`,
	Example: `  backman list export 0 photos.json
  backman list export 0 photos.toml
  backman list export 0 photos.bak --format yaml

  See Also:
    backman list import - Load an exported list`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func runExport(_ *cobra.Command, args []string) error {
	return runExportWithWriter(os.Stdout, args[0], args[1])
}

func runExportWithWriter(w io.Writer, arg, path string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	idx, err := cli.ParseIndex(arg)
	if err != nil {
		return err
	}

	l, err := sess.Store.Export(idx)
	if err != nil {
		return cli.UserErr(err)
	}

	format, err := resolveFormat(path)
	if err != nil {
		return err
	}

	if err := codec.EncodeFile(path, l, format); err != nil {
		return errors.Wrapf(err, "exporting list %d", idx)
	}

	fmt.Fprintf(w, "%s✓ exported list [%d] %q to %s (%s)%s\n",
		colorGreen, idx, l.Name, path, format, colorReset)
	return nil
}

// resolveFormat picks the interchange encoding: the --format flag wins,
// then the file extension, then the export.format config key.
func resolveFormat(path string) (codec.Format, error) {
	if exportFormat != "" {
		f, err := codec.ParseFormat(exportFormat)
		if err != nil {
			return "", errors.NewUserError(err, "Valid formats: json, yaml, toml")
		}
		return f, nil
	}

	if f, ok := codec.FormatFromPath(path); ok {
		return f, nil
	}

	f, err := codec.ParseFormat(viper.GetString("export.format"))
	if err != nil {
		return "", errors.NewUserError(err, "Check the export.format config key")
	}
	return f, nil
}
