// Package engine executes backup and restore passes over a list's resources.
//
// A pass is stateless and best-effort: each resource is processed
// independently, failures are recorded in the report and never abort the
// rest of the list. Re-running a pass reprocesses the entire list.
package engine

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/nmiranda/backman/internal/codec"
	"github.com/nmiranda/backman/internal/list"
)

// Sentinel errors for backup and restore passes.
var (
	// ErrNotFoundInSource indicates a resource's backed-up counterpart is
	// missing from the restore source directory.
	ErrNotFoundInSource = errors.New("not found in source")

	// ErrSourceVanished indicates a resource's recorded path no longer exists
	// at backup time. Paths are validated at add-time only.
	ErrSourceVanished = errors.New("source path vanished")
)

// Archiver compresses a directory tree into a single archive and extracts
// it back. The zip implementation lives in the codec package.
type Archiver interface {
	Compress(srcDir, dstPath string) error
	Extract(srcPath, dstDir string) error
}

// Engine runs backup and restore passes. Resources are processed
// sequentially, one at a time; the report carries one outcome per resource
// in list order.
type Engine struct {
	archiver Archiver
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithArchiver overrides the archiver used for compressed directory resources.
func WithArchiver(a Archiver) Option {
	return func(e *Engine) {
		e.archiver = a
	}
}

// WithLogger sets the logger used for per-resource progress.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine with the given options.
// By default it archives with codec.ZipArchiver and logs to slog.Default.
func New(opts ...Option) *Engine {
	e := &Engine{
		archiver: codec.ZipArchiver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Backup copies every resource of l into destDir, in order.
//
// Files are copied under their base name, uncompressed directories are
// copied recursively under their base name, and compressed directories
// become a single <base>.zip archive. Collisions at the destination are
// overwritten.
//
// A failure on one resource is recorded in the report and processing
// continues with the next; the returned error is non-nil only when destDir
// itself cannot be created.
func (e *Engine) Backup(l *list.List, destDir string) (*Report, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating destination directory")
	}

	e.logger.Info("starting backup", "list", l.Name, "resources", len(l.Resources), "dest", destDir)

	report := newReport(l.Name, len(l.Resources))
	for _, res := range l.Resources {
		err := e.backupResource(res, destDir)
		report.add(res, err)
		if err != nil {
			e.logger.Warn("backup failed", "path", res.Path, "error", err)
		} else {
			e.logger.Debug("backed up", "path", res.Path)
		}
	}

	e.logger.Info("backup finished", "list", l.Name, "succeeded", report.Succeeded(), "failed", report.Failed())
	return report, nil
}

func (e *Engine) backupResource(res list.Resource, destDir string) error {
	info, err := os.Stat(res.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrSourceVanished, "%s", res.Path)
		}
		return errors.Wrapf(err, "stat %s", res.Path)
	}

	switch {
	case res.Kind == list.KindFile:
		if info.IsDir() {
			return errors.Wrapf(list.ErrNotAFile, "%s", res.Path)
		}
		return copyFile(res.Path, filepath.Join(destDir, res.Name()))

	case res.Compress:
		return e.archiver.Compress(res.Path, filepath.Join(destDir, res.Name()+codec.ArchiveExt))

	default:
		return copyTree(res.Path, filepath.Join(destDir, res.Name()))
	}
}

// Restore copies every resource's backed-up counterpart from srcDir back to
// its recorded path, overwriting what is there. Counterparts are matched by
// base name: a file, a directory, or a <base>.zip archive for compressed
// directory resources.
//
// Overwrite is unconditional; the engine does not compare timestamps or
// content with what currently lives at the recorded path.
//
// Failure isolation matches Backup: a missing or unreadable counterpart is
// recorded per-resource, and the returned error is non-nil only when srcDir
// itself is not a readable directory.
func (e *Engine) Restore(l *list.List, srcDir string) (*Report, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, errors.Wrap(err, "reading source directory")
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(list.ErrNotADirectory, "%s", srcDir)
	}

	e.logger.Info("starting restore", "list", l.Name, "resources", len(l.Resources), "source", srcDir)

	report := newReport(l.Name, len(l.Resources))
	for _, res := range l.Resources {
		err := e.restoreResource(res, srcDir)
		report.add(res, err)
		if err != nil {
			e.logger.Warn("restore failed", "path", res.Path, "error", err)
		} else {
			e.logger.Debug("restored", "path", res.Path)
		}
	}

	e.logger.Info("restore finished", "list", l.Name, "succeeded", report.Succeeded(), "failed", report.Failed())
	return report, nil
}

func (e *Engine) restoreResource(res list.Resource, srcDir string) error {
	counterpart := filepath.Join(srcDir, res.Name())
	if res.Kind == list.KindDir && res.Compress {
		counterpart += codec.ArchiveExt
	}

	info, err := os.Stat(counterpart)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrNotFoundInSource, "%s", counterpart)
		}
		return errors.Wrapf(err, "stat %s", counterpart)
	}

	switch {
	case res.Kind == list.KindFile:
		if info.IsDir() {
			return errors.Wrapf(ErrNotFoundInSource, "%s is a directory", counterpart)
		}
		if err := os.MkdirAll(filepath.Dir(res.Path), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", res.Path)
		}
		return copyFile(counterpart, res.Path)

	case res.Compress:
		return e.archiver.Extract(counterpart, res.Path)

	default:
		if !info.IsDir() {
			return errors.Wrapf(ErrNotFoundInSource, "%s is not a directory", counterpart)
		}
		return copyTree(counterpart, res.Path)
	}
}
