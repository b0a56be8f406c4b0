// Package list implements the data model of the backup manager: resources,
// named lists and the process-wide list store with its selection.
package list

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Kind identifies the kind of tracked filesystem entry.
type Kind string

// Kind constants. The string values are the interchange encoding used by
// list export/import.
const (
	KindFile Kind = "file"
	KindDir  Kind = "dir"
)

// Valid returns true if k is a recognized kind.
func (k Kind) Valid() bool {
	return k == KindFile || k == KindDir
}

// Sentinel errors for resource validation.
var (
	// ErrPathNotFound indicates the path does not exist on the filesystem.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotAFile indicates the path exists but is not a regular file.
	ErrNotAFile = errors.New("not a file")

	// ErrNotADirectory indicates the path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// Resource is a single trackable filesystem entry: a file or a directory,
// optionally flagged for compression.
type Resource struct {
	// Path is the recorded filesystem path of the entry.
	Path string `json:"path"`

	// Kind is whether the entry is a file or a directory.
	Kind Kind `json:"kind"`

	// Compress marks a directory to be archived rather than copied verbatim
	// during backup. Meaningless for files.
	Compress bool `json:"compress"`
}

// Name returns the base name of the resource path. It is the name the
// backed-up counterpart carries inside a destination directory.
func (r Resource) Name() string {
	return filepath.Base(r.Path)
}

// NewFileResource validates path and builds a file resource.
// The path must exist and be a regular file at add-time; it is not
// re-validated afterwards.
func NewFileResource(path string) (Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Resource{}, errors.Wrapf(ErrPathNotFound, "%s", path)
		}
		return Resource{}, errors.Wrapf(err, "stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return Resource{}, errors.Wrapf(ErrNotAFile, "%s", path)
	}

	return Resource{Path: filepath.Clean(path), Kind: KindFile}, nil
}

// NewDirResource validates path and builds a directory resource.
// The path must exist and be a directory at add-time.
func NewDirResource(path string, compress bool) (Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Resource{}, errors.Wrapf(ErrPathNotFound, "%s", path)
		}
		return Resource{}, errors.Wrapf(err, "stat %s", path)
	}
	if !info.IsDir() {
		return Resource{}, errors.Wrapf(ErrNotADirectory, "%s", path)
	}

	return Resource{Path: filepath.Clean(path), Kind: KindDir, Compress: compress}, nil
}
