// Package cli provides shared plumbing for backman commands: the per-command
// session around the list store and small interaction helpers.
package cli

import (
	"github.com/nmiranda/backman/internal/list"
	"github.com/nmiranda/backman/internal/paths"
	"github.com/nmiranda/backman/internal/state"
)

// Session wraps the list store for the duration of one command invocation.
// It loads the saved snapshot on open and, unless autosave is disabled,
// writes it back after the command mutated the store.
type Session struct {
	// Store is the list store commands operate on.
	Store *list.Store

	path     string
	autosave bool
}

// Open loads the session from statePath, or from the default XDG state file
// when statePath is empty. A missing state file yields a fresh store with
// the default empty list.
func Open(statePath string, autosave bool) (*Session, error) {
	if statePath == "" {
		statePath = paths.StateFile()
	}

	st, err := state.Load(statePath)
	if err != nil {
		return nil, err
	}

	return &Session{
		Store:    st,
		path:     statePath,
		autosave: autosave,
	}, nil
}

// Save snapshots the store back to the state file. It is a no-op when
// autosave is disabled, keeping the store ephemeral.
func (s *Session) Save() error {
	if !s.autosave {
		return nil
	}
	return state.Save(s.Store, s.path)
}
