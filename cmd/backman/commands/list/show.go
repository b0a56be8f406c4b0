package list

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/list"
)

func init() {
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [INDEX]",
	Short: "Show all lists, or one list's resources",
	Long: `Without an index, show every list with its index, name and resource
count; the selected list is marked with an asterisk. With an index, show the
resources of that list instead.`,
	Example: `  # Overview of all lists
  backman list show

  # Resources of list 0
  backman list show 0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	return runShowWithWriter(os.Stdout, args)
}

func runShowWithWriter(w io.Writer, args []string) error {
	sess, err := cli.OpenDefault(flags.GetStatePath(), flags.GetNoSave())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		printSummaries(w, sess.Store.Summaries())
		return nil
	}

	idx, err := cli.ParseIndex(args[0])
	if err != nil {
		return err
	}

	l, err := sess.Store.Get(idx)
	if err != nil {
		return cli.UserErr(err)
	}

	PrintResources(w, l)
	return nil
}

func printSummaries(w io.Writer, summaries []list.Summary) {
	if len(summaries) == 0 {
		fmt.Fprintf(w, "%s(no lists)%s\n", colorGray, colorReset)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sINDEX%s\t%sNAME%s\t%sRESOURCES%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range summaries {
		marker := " "
		if s.Selected {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s[%d]%s%s\t%s\t%d\n",
			colorGreen, s.Index, colorReset, marker,
			s.Name, s.ResourceCount)
	}
	tw.Flush()
}

// PrintResources writes one line per resource of l: index, kind, compress
// marker and path. Shared with the root 'show' command.
func PrintResources(w io.Writer, l *list.List) {
	fmt.Fprintf(w, "%sList: %s%s\n", colorCyan+colorBold, l.Name, colorReset)

	if len(l.Resources) == 0 {
		fmt.Fprintf(w, "  %s(no resources)%s\n", colorGray, colorReset)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sINDEX%s\t%sKIND%s\t%sCOMPRESS%s\t%sPATH%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for i, r := range l.Resources {
		compress := "-"
		if r.Kind == list.KindDir && r.Compress {
			compress = "zip"
		}
		fmt.Fprintf(tw, "  %s[%d]%s\t%s\t%s\t%s\n",
			colorGreen, i, colorReset,
			r.Kind, compress, r.Path)
	}
	tw.Flush()
}
