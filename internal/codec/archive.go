package codec

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ArchiveExt is the extension of archives produced for compressed
// directory resources.
const ArchiveExt = ".zip"

// ErrBadArchive indicates a corrupt or unreadable archive.
var ErrBadArchive = errors.New("bad archive")

// ZipArchiver compresses directory trees to zip archives and extracts them
// back. It is the archive half of the codec, used by the backup engine for
// resources flagged with compress.
type ZipArchiver struct{}

// Compress writes the contents of srcDir as a zip archive at dstPath.
// Entry names are relative to srcDir; an existing archive is replaced.
func (ZipArchiver) Compress(srcDir, dstPath string) error {
	out, err := os.Create(dstPath)
	if err != nil {
		return errors.Wrap(err, "creating archive")
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return errors.Wrapf(err, "adding %s", rel)
		}

		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if walkErr != nil {
		zw.Close()
		return errors.Wrap(walkErr, "compressing directory")
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "finalizing archive")
	}
	return out.Close()
}

// Extract unpacks the archive at srcPath into dstDir, creating it if needed.
// Existing files are overwritten.
func (ZipArchiver) Extract(srcPath, dstDir string) error {
	zr, err := zip.OpenReader(srcPath)
	if err != nil {
		return errors.Wrapf(ErrBadArchive, "%s: %v", srcPath, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return errors.Wrap(err, "creating destination directory")
	}

	for _, entry := range zr.File {
		if err := extractEntry(entry, dstDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, dstDir string) error {
	// Reject entries that would escape the destination (zip slip)
	name := filepath.FromSlash(entry.Name)
	dst := filepath.Join(dstDir, name)
	if !strings.HasPrefix(dst, filepath.Clean(dstDir)+string(os.PathSeparator)) {
		return errors.Wrapf(ErrBadArchive, "entry %q escapes destination", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(dst, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", entry.Name)
	}

	r, err := entry.Open()
	if err != nil {
		return errors.Wrapf(ErrBadArchive, "opening entry %s: %v", entry.Name, err)
	}
	defer r.Close()

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return errors.Wrapf(err, "extracting %s", entry.Name)
	}
	return f.Close()
}
