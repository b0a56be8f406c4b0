package list

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/nmiranda/backman/cmd/backman/commands/flags"
	"github.com/nmiranda/backman/internal/cli"
	"github.com/nmiranda/backman/internal/errors"
)

// setupState points the session plumbing at a fresh temp state file and
// returns its path.
func setupState(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("state.autosave", true)
	viper.Set("export.format", "json")

	statePath := filepath.Join(t.TempDir(), "state.json")
	flags.SetStatePath(statePath)
	flags.SetNoSave(false)
	t.Cleanup(func() {
		flags.SetStatePath("")
		flags.SetNoSave(false)
	})

	return statePath
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func reopen(t *testing.T, statePath string) *cli.Session {
	t.Helper()
	sess, err := cli.Open(statePath, false)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestRunCreate(t *testing.T) {
	statePath := setupState(t)

	var out bytes.Buffer
	if err := runCreateWithWriter(&out, "photos"); err != nil {
		t.Fatalf("runCreateWithWriter() error = %v", err)
	}
	if !strings.Contains(out.String(), "photos") {
		t.Errorf("output = %q, want list name", out.String())
	}

	sess := reopen(t, statePath)
	if sess.Store.Len() != 2 {
		t.Errorf("Len() = %d, want default list plus created one", sess.Store.Len())
	}
}

func TestRunSelect(t *testing.T) {
	statePath := setupState(t)

	var out bytes.Buffer
	if err := runCreateWithWriter(&out, "photos"); err != nil {
		t.Fatal(err)
	}
	if err := runSelectWithWriter(&out, []string{"1"}); err != nil {
		t.Fatalf("runSelectWithWriter() error = %v", err)
	}

	sess := reopen(t, statePath)
	l, err := sess.Store.Selected()
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "photos" {
		t.Errorf("selected list = %q, want photos", l.Name)
	}
}

func TestRunSelect_BadIndex(t *testing.T) {
	setupState(t)

	var out bytes.Buffer
	err := runSelectWithWriter(&out, []string{"7"})

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestRunRemove_WarnsWhenSelectionCleared(t *testing.T) {
	statePath := setupState(t)

	var out bytes.Buffer
	if err := runRemoveWithWriter(&out, "0"); err != nil {
		t.Fatalf("runRemoveWithWriter() error = %v", err)
	}
	if !strings.Contains(out.String(), "No list is selected") {
		t.Errorf("output = %q, want selection warning", out.String())
	}

	sess := reopen(t, statePath)
	if sess.Store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sess.Store.Len())
	}
}

func TestRunRename(t *testing.T) {
	statePath := setupState(t)

	var out bytes.Buffer
	if err := runRenameWithWriter(&out, "0", "documents"); err != nil {
		t.Fatalf("runRenameWithWriter() error = %v", err)
	}

	sess := reopen(t, statePath)
	l, err := sess.Store.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "documents" {
		t.Errorf("name = %q, want documents", l.Name)
	}
}

func TestRunExportImport_RoundTrip(t *testing.T) {
	statePath := setupState(t)

	exportPath := filepath.Join(t.TempDir(), "main.yaml")

	var out bytes.Buffer
	if err := runExportWithWriter(&out, "0", exportPath); err != nil {
		t.Fatalf("runExportWithWriter() error = %v", err)
	}

	// Import with confirmation answered yes.
	out.Reset()
	in := strings.NewReader("y\n")
	if err := runImportWithIO(in, &out, exportPath); err != nil {
		t.Fatalf("runImportWithIO() error = %v", err)
	}
	if !strings.Contains(out.String(), "imported") {
		t.Errorf("output = %q, want import confirmation", out.String())
	}

	sess := reopen(t, statePath)
	if sess.Store.Len() != 2 {
		t.Errorf("Len() = %d, want original plus imported copy", sess.Store.Len())
	}
}

func TestRunImport_Declined(t *testing.T) {
	statePath := setupState(t)

	exportPath := filepath.Join(t.TempDir(), "main.json")
	var out bytes.Buffer
	if err := runExportWithWriter(&out, "0", exportPath); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	in := strings.NewReader("n\n")
	if err := runImportWithIO(in, &out, exportPath); err != nil {
		t.Fatalf("runImportWithIO() error = %v", err)
	}
	if !strings.Contains(out.String(), "cancelled") {
		t.Errorf("output = %q, want cancellation notice", out.String())
	}

	sess := reopen(t, statePath)
	if sess.Store.Len() != 1 {
		t.Errorf("Len() = %d, want unchanged store", sess.Store.Len())
	}
}

func TestRunImport_MalformedFile(t *testing.T) {
	setupState(t)

	badPath := filepath.Join(t.TempDir(), "bad.json")
	if err := writeFile(badPath, "{broken"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := runImportWithIO(strings.NewReader(""), &out, badPath)

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Suggestion == "" {
		t.Error("Suggestion is empty for malformed import")
	}
}

func TestRunShow_MarksSelected(t *testing.T) {
	setupState(t)

	var out bytes.Buffer
	if err := runCreateWithWriter(&out, "photos"); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := runShowWithWriter(&out, nil); err != nil {
		t.Fatalf("runShowWithWriter() error = %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	var sawMarker bool
	for _, line := range lines {
		if strings.Contains(line, "[0]") && strings.Contains(line, "*") {
			sawMarker = true
		}
	}
	if !sawMarker {
		t.Errorf("output missing selection marker on list 0:\n%s", out.String())
	}
}
