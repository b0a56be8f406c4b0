package cli

import (
	"github.com/spf13/viper"
)

// OpenDefault opens a session honoring the --state/--no-save flags and the
// state.* configuration keys. stateFlag overrides config; noSave wins over
// state.autosave.
func OpenDefault(stateFlag string, noSave bool) (*Session, error) {
	path := stateFlag
	if path == "" {
		path = viper.GetString("state.file")
	}

	autosave := !noSave && viper.GetBool("state.autosave")

	return Open(path, autosave)
}
