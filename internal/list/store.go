package list

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrNoListSelected indicates an implicit per-list command was issued while
// no list is selected.
var ErrNoListSelected = errors.New("no list selected")

// DefaultListName is the name of the list a fresh store starts with.
const DefaultListName = "main"

// noSelection marks the selected index when no list is selected.
const noSelection = -1

// Summary describes one list for overview output.
type Summary struct {
	Index         int
	Name          string
	ResourceCount int
	Selected      bool
}

// Store is the process-wide collection of lists and the current selection.
// All methods take a coarse command-level lock; the model is single-user and
// needs no finer-grained concurrency.
type Store struct {
	mu       sync.Mutex
	lists    []*List
	selected int
}

// NewStore creates a store holding one default empty list, which starts
// selected. The store never persists itself; callers snapshot it explicitly.
func NewStore() *Store {
	return &Store{
		lists:    []*List{New(DefaultListName)},
		selected: 0,
	}
}

// NewEmptyStore creates a store with no lists and no selection.
// Used when restoring a snapshot.
func NewEmptyStore() *Store {
	return &Store{selected: noSelection}
}

// Create appends a new empty list and returns its index.
// Names need not be unique.
func (s *Store) Create(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists = append(s.lists, New(name))
	return len(s.lists) - 1
}

// Remove deletes the list at index. Subsequent indices re-compact.
// If the removed list was selected, the selection becomes none.
func (s *Store) Remove(index int) (*List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return nil, err
	}

	removed := s.lists[index]
	s.lists = append(s.lists[:index], s.lists[index+1:]...)

	switch {
	case s.selected == index:
		s.selected = noSelection
	case s.selected > index:
		s.selected--
	}

	return removed, nil
}

// Rename changes the name of the list at index.
func (s *Store) Rename(index int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return err
	}
	s.lists[index].Name = name
	return nil
}

// Select makes the list at index the target of implicit per-list commands.
func (s *Store) Select(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return err
	}
	s.selected = index
	return nil
}

// Selected returns the currently selected list, or ErrNoListSelected.
func (s *Store) Selected() (*List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == noSelection || s.selected >= len(s.lists) {
		return nil, ErrNoListSelected
	}
	return s.lists[s.selected], nil
}

// SelectedIndex returns the index of the selected list, or -1 if none.
func (s *Store) SelectedIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Get returns the list at index.
func (s *Store) Get(index int) (*List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return nil, err
	}
	return s.lists[index], nil
}

// Len returns the number of lists.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lists)
}

// Summaries returns one Summary per list, in sequence order.
func (s *Store) Summaries() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]Summary, len(s.lists))
	for i, l := range s.lists {
		summaries[i] = Summary{
			Index:         i,
			Name:          l.Name,
			ResourceCount: len(l.Resources),
			Selected:      i == s.selected,
		}
	}
	return summaries
}

// Export returns a deep copy of the list at index. Encoding the copy to an
// interchange format is the codec's concern; writing it to disk is the
// caller's.
func (s *Store) Export(index int) (*List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return nil, err
	}
	return s.lists[index].Clone(), nil
}

// Import appends a deserialized list and returns its index. The operation is
// unconditional; any confirmation happens in the calling layer before the
// list reaches the store.
func (s *Store) Import(l *List) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists = append(s.lists, l)
	return len(s.lists) - 1
}

// check validates a positional list index. Callers hold the lock.
func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.lists) {
		return errors.Wrapf(ErrIndexOutOfRange, "list %d", index)
	}
	return nil
}
