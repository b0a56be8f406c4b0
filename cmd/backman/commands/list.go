package commands

import "github.com/nmiranda/backman/cmd/backman/commands/list"

func init() {
	rootCmd.AddCommand(list.Cmd)
}
