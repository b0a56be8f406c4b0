package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts the user to confirm an action with a y/N question.
// If assumeYes is true, it returns true without prompting.
// EOF and anything other than "y"/"yes" count as declined.
func Confirm(in io.Reader, out io.Writer, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	if out != nil {
		fmt.Fprintf(out, "%s [y/N]: ", strings.TrimSpace(question))
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	ans := strings.TrimSpace(strings.ToLower(line))
	return ans == "y" || ans == "yes", nil
}
