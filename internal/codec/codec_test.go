package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/nmiranda/backman/internal/list"
)

func sampleList() *list.List {
	return &list.List{
		Name: "docs",
		Resources: []list.Resource{
			{Path: "/home/user/notes.txt", Kind: list.KindFile},
			{Path: "/home/user/photos", Kind: list.KindDir, Compress: true},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"lists/docs.json", FormatJSON, true},
		{"docs.yml", FormatYAML, true},
		{"docs.toml", FormatTOML, true},
		{"docs.txt", "", false},
		{"docs", "", false},
	}

	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = (%q, %t), want (%q, %t)",
				tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := sampleList()

	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(orig, f)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, err := Decode(data, f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if got.Name != orig.Name {
				t.Errorf("Name = %q, want %q", got.Name, orig.Name)
			}
			if len(got.Resources) != len(orig.Resources) {
				t.Fatalf("len(Resources) = %d, want %d", len(got.Resources), len(orig.Resources))
			}
			for i, res := range got.Resources {
				if res != orig.Resources[i] {
					t.Errorf("Resources[%d] = %+v, want %+v", i, res, orig.Resources[i])
				}
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode([]byte("{not json"), FormatJSON); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(malformed) error = %v, want ErrDecode", err)
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	data := []byte(`{"name":"docs","resources":[{"path":"/x","kind":"symlink"}]}`)
	if _, err := Decode(data, FormatJSON); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(unknown kind) error = %v, want ErrDecode", err)
	}
}

func TestEncodeFile_DecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.yaml")
	orig := sampleList()

	if err := EncodeFile(path, orig, FormatYAML); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	got, err := DecodeFile(path, FormatYAML)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if got.Name != orig.Name || len(got.Resources) != len(orig.Resources) {
		t.Errorf("DecodeFile() = %+v, want %+v", got, orig)
	}
}

func TestDecodeFile_Missing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.json"), FormatJSON); err == nil {
		t.Error("DecodeFile(missing) error = nil, want error")
	}
}

func TestEncode_EmptyList(t *testing.T) {
	l := list.New("empty")

	data, err := Encode(l, FormatJSON)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := Decode(data, FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
	if got.Name != "empty" {
		t.Errorf("Name = %q, want %q", got.Name, "empty")
	}

	// The file form of an exported empty list must round-trip too.
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := EncodeFile(path, l, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
}
