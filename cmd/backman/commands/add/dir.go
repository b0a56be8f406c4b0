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

var compress bool

func init() {
	dirCmd.Flags().BoolVarP(&compress, "compress", "c", false,
		"archive the directory as a zip file during backup")
	Cmd.AddCommand(dirCmd)
}

var dirCmd = &cobra.Command{
	Use:   "dir PATH",
	Short: "Add a directory to the active list",
	Long: `Add a directory resource to the currently selected list.

The path must exist and be a directory. By default backup copies the tree
recursively; with -c/--compress, backup produces a single zip archive named
after the directory instead.`,
	Example: `  backman add dir ~/documents
  backman add dir ~/projects/site --compress`,
	Args: cobra.ExactArgs(1),
	RunE: runDir,
}

func runDir(_ *cobra.Command, args []string) error {
	return runDirWithWriter(os.Stdout, args[0], compress)
}

func runDirWithWriter(w io.Writer, path string, compress bool) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	l, err := sess.Store.Selected()
	if err != nil {
		return cli.UserErr(err)
	}

	res, err := l.AddDir(path, compress)
	if err != nil {
		return cli.UserErr(err)
	}

	suffix := ""
	if res.Compress {
		suffix = " (compressed)"
	}
	fmt.Fprintf(w, "%s✓ added dir %q to list %q%s%s\n",
		colorGreen, res.Name(), l.Name, suffix, colorReset)

	return errors.Wrap(sess.Save(), "saving state")
}
