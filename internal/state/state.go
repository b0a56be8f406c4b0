// Package state persists the list store between CLI runs.
//
// The store itself never touches disk; persistence is an explicit action of
// the command layer, which saves a snapshot after each command and reloads
// it on the next. Disabling autosave leaves all state ephemeral, in which
// case lists survive only through explicit export.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/nmiranda/backman/internal/codec"
	"github.com/nmiranda/backman/internal/list"
	"github.com/nmiranda/backman/pkg/fileutil"
)

// snapshotVersion is the snapshot format version for forward compatibility.
const snapshotVersion = 1

// ErrBadSnapshot indicates a malformed state file.
var ErrBadSnapshot = errors.New("malformed state file")

// snapshot is the on-disk form of the whole store.
type snapshot struct {
	Version  int                `json:"version"`
	Selected int                `json:"selected"`
	Lists    []codec.ListRecord `json:"lists"`
}

// Save writes a snapshot of the store to path, creating parent directories
// as needed. The write is atomic.
func Save(st *list.Store, path string) error {
	snap := snapshot{
		Version:  snapshotVersion,
		Selected: st.SelectedIndex(),
		Lists:    make([]codec.ListRecord, 0, st.Len()),
	}

	for i := 0; i < st.Len(); i++ {
		l, err := st.Get(i)
		if err != nil {
			return err
		}
		snap.Lists = append(snap.Lists, codec.ToRecord(l))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "creating state directory")
	}

	return fileutil.AtomicWriteJSON(path, snap)
}

// Load reads a snapshot from path and rebuilds the store.
// A missing file is not an error: it yields a fresh store holding the
// default empty list, matching first-run behavior.
func Load(path string) (*list.Store, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return list.NewStore(), nil
		}
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(ErrBadSnapshot, "%s: %v", path, err)
	}

	st := list.NewEmptyStore()
	for _, rec := range snap.Lists {
		l, err := codec.FromRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(ErrBadSnapshot, "%s: %v", path, err)
		}
		st.Import(l)
	}

	if snap.Selected >= 0 && snap.Selected < st.Len() {
		if err := st.Select(snap.Selected); err != nil {
			return nil, err
		}
	}

	return st, nil
}
