// Package renamer implements the per-file action of a run: pick a fresh
// random name, show it, ask, and move the file.
package renamer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/uuidify/internal/files/filesystem"
	"github.com/vvka-141/uuidify/internal/namegen"
	"github.com/vvka-141/uuidify/internal/tui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// Renamer is the FileHandler handed to the walker. It is not safe for
// concurrent use; runs are strictly sequential.
type Renamer struct {
	fsProvider    filesystem.FileSystemProvider
	generator     uuidify.NameGenerator
	approver      uuidify.Approver
	logger        uuidify.Logger
	skipGenerated bool
	records       []uuidify.RenameRecord
}

// Config bundles the collaborators of a Renamer.
// Nil FS and Generator fall back to the OS filesystem and UUIDs.
// Destination lines are printed through Logger.Info.
type Config struct {
	FS            filesystem.FileSystemProvider
	Generator     uuidify.NameGenerator
	Approver      uuidify.Approver
	Logger        uuidify.Logger
	SkipGenerated bool
}

// New creates a Renamer.
// Panics if Approver or Logger is nil.
func New(cfg Config) *Renamer {
	if cfg.Approver == nil {
		panic("approver cannot be nil")
	}
	if cfg.Logger == nil {
		panic("logger cannot be nil")
	}
	if cfg.FS == nil {
		cfg.FS = filesystem.NewOSFileSystem()
	}
	if cfg.Generator == nil {
		cfg.Generator = namegen.New()
	}
	return &Renamer{
		fsProvider:    cfg.FS,
		generator:     cfg.Generator,
		approver:      cfg.Approver,
		logger:        cfg.Logger,
		skipGenerated: cfg.SkipGenerated,
	}
}

// HandleFile renames path to a generated name in the same directory, keeping
// its extension. Filesystem errors are returned unwrapped.
func (r *Renamer) HandleFile(ctx context.Context, path string) error {
	if r.skipGenerated && namegen.IsGeneratedName(Stem(path)) {
		r.logger.Verbose("Skipping %s: already has a generated name", path)
		r.record(path, "", uuidify.OutcomeSkipped)
		return nil
	}

	newPath := Destination(path, r.generator.NewName())
	r.logger.Info("%s", newPath)

	approved, err := r.approver.RequestApproval(ctx, path, newPath)
	if err != nil {
		return err
	}
	if !approved {
		r.record(path, newPath, uuidify.OutcomeDeclined)
		return nil
	}

	if err := r.fsProvider.Rename(path, newPath); err != nil {
		return err
	}
	r.logger.Verbose("Renamed %s %s %s", path, tui.SymbolArrowRight, newPath)
	r.record(path, newPath, uuidify.OutcomeRenamed)
	return nil
}

// Records returns every outcome so far, in visit order.
func (r *Renamer) Records() []uuidify.RenameRecord {
	out := make([]uuidify.RenameRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Renamer) record(source, destination string, outcome uuidify.Outcome) {
	r.records = append(r.records, uuidify.RenameRecord{
		Source:      source,
		Destination: destination,
		Outcome:     outcome,
	})
}

// Destination computes where path goes when given the base name name:
// same parent directory, original extension re-applied verbatim.
// The parent is kept as written, not cleaned: in "link/../f.txt" the ".."
// belongs to the symlink's target.
// A bare file name without directory yields a bare destination.
func Destination(path, name string) string {
	path = trimTrailingSeparators(path)
	parent := strings.TrimSuffix(path, filepath.Base(path))
	return parent + name + Extension(path)
}

func trimTrailingSeparators(path string) string {
	end := len(path)
	for end > 1 && os.IsPathSeparator(path[end-1]) {
		end--
	}
	return path[:end]
}

// Extension returns the final ".ext" of the base name of path, or "" when
// there is none. A leading dot alone does not start an extension (".bashrc"),
// and a trailing dot yields no extension ("notes.").
func Extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return base[i:]
}

// Stem returns the base name of path without its Extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, Extension(path))
}

var _ uuidify.FileHandler = (*Renamer)(nil)
