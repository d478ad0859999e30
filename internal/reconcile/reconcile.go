// Package reconcile compares the entries of a structure document against the
// actual state of the filesystem.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/structcheck/internal/structure"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

type checksumProvider interface {
	SumFor(ctx context.Context, path string, declared string) (string, bool)
}

// Handler is the principal implementation for the reconciliation services.
type Handler struct {
	osHandler       osProvider
	checksumHandler checksumProvider
	baseDir         string
}

// NewHandler returns a pointer to a new reconciliation [Handler]. Relative
// declared paths are resolved against baseDir, or the working directory of
// the process if baseDir is empty.
func NewHandler(osHandler osProvider, checksumHandler checksumProvider, baseDir string) *Handler {
	return &Handler{
		osHandler:       osHandler,
		checksumHandler: checksumHandler,
		baseDir:         baseDir,
	}
}

// Reconcile checks every entry of the document with status "exists" for its
// existence and, for files with a declared checksum, for matching content.
// Issues are reported in the declaration order of the document. Mismatches
// are not errors; an error is only returned if the context was cancelled.
func (r *Handler) Reconcile(ctx context.Context, doc *structure.Document) (*Report, error) {
	report := newReport()

	for _, entry := range doc.Entries() {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("(reconcile) %w", ctx.Err())
		}

		if entry.Node.Status != structure.StatusExists {
			slog.Debug("Skipped path: status not subject to filesystem checks",
				"path", entry.Path,
				"status", string(entry.Node.Status),
			)

			continue
		}

		r.reconcileEntry(ctx, entry, report)
	}

	slog.Info("Reconciled structure:",
		"entries", doc.Len(),
		"issues", len(report.Issues),
	)

	return report, nil
}

func (r *Handler) reconcileEntry(ctx context.Context, entry structure.Entry, report *Report) {
	path := r.resolve(entry.Path)

	if _, err := r.osHandler.Stat(path); err != nil {
		slog.Debug("Path not found:",
			"path", entry.Path,
			"err", err,
		)
		report.addIssue("%s marked as exists but not found: %s", entry.Node.Type, entry.Path)

		return
	}

	if !entry.Node.ExpectsChecksum() {
		return
	}

	actual, ok := r.checksumHandler.SumFor(ctx, path, entry.Node.Checksum)
	if !ok {
		actual = UnavailableChecksum
	}

	if !ok || actual != entry.Node.Checksum {
		report.addIssue("Checksum mismatch for %s: expected %s, got %s", entry.Path, entry.Node.Checksum, actual)
	}
}

func (r *Handler) resolve(path string) string {
	if r.baseDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(r.baseDir, path)
}
