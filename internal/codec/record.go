package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/nmiranda/backman/internal/list"
)

// ResourceRecord is the interchange form of a single resource.
type ResourceRecord struct {
	Path     string `json:"path" yaml:"path" toml:"path"`
	Kind     string `json:"kind" yaml:"kind" toml:"kind"`
	Compress bool   `json:"compress" yaml:"compress" toml:"compress"`
}

// ListRecord is the interchange form of a list: its name plus the ordered
// resources. This is the shape written by export and read by import.
type ListRecord struct {
	Name      string           `json:"name" yaml:"name" toml:"name"`
	Resources []ResourceRecord `json:"resources" yaml:"resources" toml:"resources"`
}

// ToRecord converts a list to its interchange form.
func ToRecord(l *list.List) ListRecord {
	rec := ListRecord{
		Name:      l.Name,
		Resources: make([]ResourceRecord, len(l.Resources)),
	}
	for i, r := range l.Resources {
		rec.Resources[i] = ResourceRecord{
			Path:     r.Path,
			Kind:     string(r.Kind),
			Compress: r.Compress,
		}
	}
	return rec
}

// FromRecord converts an interchange record back to a list.
// Unknown kind values are a deserialization error; paths are not re-validated
// against the filesystem, matching add-time-only validation.
func FromRecord(rec ListRecord) (*list.List, error) {
	l := &list.List{
		Name:      rec.Name,
		Resources: make([]list.Resource, len(rec.Resources)),
	}
	for i, r := range rec.Resources {
		kind := list.Kind(r.Kind)
		if !kind.Valid() {
			return nil, errors.Wrapf(ErrDecode, "resource %d: unknown kind %q", i, r.Kind)
		}
		l.Resources[i] = list.Resource{
			Path:     r.Path,
			Kind:     kind,
			Compress: r.Compress,
		}
	}
	return l, nil
}
