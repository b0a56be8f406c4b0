package commands

import "github.com/nmiranda/backman/cmd/backman/commands/add"

func init() {
	rootCmd.AddCommand(add.Cmd)
}
