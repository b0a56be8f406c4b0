package list

import (
	"github.com/cockroachdb/errors"
)

// ErrIndexOutOfRange indicates a positional index outside the valid range.
var ErrIndexOutOfRange = errors.New("index out of range")

// List is a named, ordered collection of resources. Indices are positional
// and re-compact on deletion; they are not stable identifiers.
type List struct {
	// Name is the human-readable label of the list.
	Name string `json:"name"`

	// Resources is the ordered sequence of tracked entries.
	Resources []Resource `json:"resources"`
}

// New creates an empty list with the given name.
func New(name string) *List {
	return &List{Name: name}
}

// AddFile validates path as a regular file and appends a file resource.
// Duplicate paths are permitted and create distinct entries.
func (l *List) AddFile(path string) (Resource, error) {
	res, err := NewFileResource(path)
	if err != nil {
		return Resource{}, err
	}
	l.Resources = append(l.Resources, res)
	return res, nil
}

// AddDir validates path as a directory and appends a directory resource.
// When compress is true, backup produces a single archive instead of a
// recursive copy.
func (l *List) AddDir(path string, compress bool) (Resource, error) {
	res, err := NewDirResource(path, compress)
	if err != nil {
		return Resource{}, err
	}
	l.Resources = append(l.Resources, res)
	return res, nil
}

// Delete removes the resource at index and re-compacts subsequent indices.
func (l *List) Delete(index int) (Resource, error) {
	if index < 0 || index >= len(l.Resources) {
		return Resource{}, errors.Wrapf(ErrIndexOutOfRange, "resource %d", index)
	}
	res := l.Resources[index]
	l.Resources = append(l.Resources[:index], l.Resources[index+1:]...)
	return res, nil
}

// Len returns the number of resources in the list.
func (l *List) Len() int {
	return len(l.Resources)
}

// Clone returns a deep copy of the list. Export hands out clones so callers
// cannot mutate the store's data through the returned pointer.
func (l *List) Clone() *List {
	resources := make([]Resource, len(l.Resources))
	copy(resources, l.Resources)
	return &List{Name: l.Name, Resources: resources}
}
