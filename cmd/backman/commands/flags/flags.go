// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and the command subpackages (list, add, etc.).
package flags

// statePath holds the value of the --state flag.
var statePath string

// noSave holds the value of the --no-save flag.
var noSave bool

// GetStatePath returns the current value of the --state flag.
func GetStatePath() string {
	return statePath
}

// SetStatePath sets the state path flag value.
// This is used by the root command after flag parsing.
func SetStatePath(path string) {
	statePath = path
}

// GetNoSave returns the current value of the --no-save flag.
func GetNoSave() bool {
	return noSave
}

// SetNoSave sets the no-save flag value.
func SetNoSave(v bool) {
	noSave = v
}
