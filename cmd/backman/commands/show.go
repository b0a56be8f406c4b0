package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	listcmd "github.com/nmiranda/backman/cmd/backman/commands/list"
	"github.com/nmiranda/backman/internal/cli"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List resources of the active list",
	Long: `Show the resources of the currently selected list with their
indices, kinds, compression flags and paths.`,
	Example: `  backman show

  See Also:
    backman list show - Overview of all lists`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(_ *cobra.Command, _ []string) error {
	return runShowWithWriter(os.Stdout)
}

func runShowWithWriter(w io.Writer) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	l, err := sess.Store.Selected()
	if err != nil {
		return cli.UserErr(err)
	}

	listcmd.PrintResources(w, l)
	return nil
}
