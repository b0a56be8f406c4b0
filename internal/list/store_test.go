package list

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestNewStore_DefaultList(t *testing.T) {
	s := NewStore()

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	l, err := s.Selected()
	if err != nil {
		t.Fatalf("Selected() error = %v", err)
	}
	if l.Name != DefaultListName {
		t.Errorf("selected list = %q, want %q", l.Name, DefaultListName)
	}
}

func TestStoreCreate(t *testing.T) {
	s := NewStore()

	idx := s.Create("photos")
	if idx != 1 {
		t.Errorf("Create() = %d, want 1", idx)
	}

	// Names need not be unique; a second list with the same name gets the
	// next index.
	if idx := s.Create("photos"); idx != 2 {
		t.Errorf("second Create() = %d, want 2", idx)
	}
}

func TestStoreRemove_ClearsSelection(t *testing.T) {
	s := NewStore()
	s.Create("photos")
	if err := s.Select(1); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Remove(1)
	if err != nil {
		t.Fatalf("Remove(1) error = %v", err)
	}
	if removed.Name != "photos" {
		t.Errorf("removed list = %q, want %q", removed.Name, "photos")
	}

	if _, err := s.Selected(); !errors.Is(err, ErrNoListSelected) {
		t.Errorf("Selected() after removing selected list error = %v, want ErrNoListSelected", err)
	}
}

func TestStoreRemove_ShiftsSelection(t *testing.T) {
	s := NewStore()
	s.Create("photos")
	if err := s.Select(1); err != nil {
		t.Fatal(err)
	}

	// Removing a list before the selected one re-compacts indices; the
	// selection must follow the list, not the index.
	if _, err := s.Remove(0); err != nil {
		t.Fatalf("Remove(0) error = %v", err)
	}

	l, err := s.Selected()
	if err != nil {
		t.Fatalf("Selected() error = %v", err)
	}
	if l.Name != "photos" {
		t.Errorf("selected list = %q, want %q", l.Name, "photos")
	}
	if s.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", s.SelectedIndex())
	}
}

func TestStoreRemove_OutOfRange(t *testing.T) {
	s := NewStore()
	if _, err := s.Remove(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestStoreRename(t *testing.T) {
	s := NewStore()
	if err := s.Rename(0, "everything"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	l, err := s.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "everything" {
		t.Errorf("name = %q, want %q", l.Name, "everything")
	}
}

func TestStoreSelect_OutOfRange(t *testing.T) {
	s := NewStore()
	if err := s.Select(9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Select(9) error = %v, want ErrIndexOutOfRange", err)
	}

	// A failed select leaves the previous selection intact.
	if s.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", s.SelectedIndex())
	}
}

func TestStoreSummaries(t *testing.T) {
	s := NewStore()
	s.Create("photos")
	if err := s.Select(1); err != nil {
		t.Fatal(err)
	}

	summaries := s.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("len(Summaries()) = %d, want 2", len(summaries))
	}
	if summaries[0].Selected {
		t.Error("summaries[0].Selected = true, want false")
	}
	if !summaries[1].Selected {
		t.Error("summaries[1].Selected = false, want true")
	}
	if summaries[1].Name != "photos" {
		t.Errorf("summaries[1].Name = %q, want %q", summaries[1].Name, "photos")
	}
}

func TestStoreExport_ReturnsCopy(t *testing.T) {
	s := NewStore()

	exported, err := s.Export(0)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	exported.Name = "tampered"

	l, err := s.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != DefaultListName {
		t.Errorf("store list renamed through export copy: %q", l.Name)
	}
}

func TestStoreImport(t *testing.T) {
	s := NewStore()

	idx := s.Import(New("restored"))
	if idx != 1 {
		t.Errorf("Import() = %d, want 1", idx)
	}

	// Import never replaces; importing the same list again appends.
	if idx := s.Import(New("restored")); idx != 2 {
		t.Errorf("second Import() = %d, want 2", idx)
	}
}

func TestNewEmptyStore(t *testing.T) {
	s := NewEmptyStore()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, err := s.Selected(); !errors.Is(err, ErrNoListSelected) {
		t.Errorf("Selected() error = %v, want ErrNoListSelected", err)
	}
}
