package output

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/yaklabco/rulesync/pkg/fsutil"
)

// Status describes what happened to one record on disk.
type Status string

const (
	StatusCreated   Status = "created"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
)

// FileResult is the outcome for one record.
type FileResult struct {
	Tool   Tool   `json:"tool"`
	Path   string `json:"path"`
	Status Status `json:"status"`
	Bytes  int    `json:"bytes"`

	// BackedUp is true when the previous content was saved to a sidecar backup.
	BackedUp bool `json:"backed_up,omitempty"`
}

// Stale reports whether the file on disk differs from the record.
func (r FileResult) Stale() bool {
	return r.Status != StatusUnchanged
}

// WriteOptions controls Writer behavior.
type WriteOptions struct {
	// DryRun computes statuses without touching the file system.
	DryRun bool

	// Backup saves the previous content of updated files next to them.
	Backup bool
}

// Writer materializes records on disk.
type Writer struct {
	opts WriteOptions
}

// NewWriter creates a Writer.
func NewWriter(opts WriteOptions) *Writer {
	return &Writer{opts: opts}
}

// WriteResult aggregates the outcome of a Write call.
type WriteResult struct {
	Files []FileResult `json:"files"`
}

// Count returns the number of files with the given status.
func (r *WriteResult) Count(status Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Stale returns the files whose content on disk differs from the records.
func (r *WriteResult) Stale() []FileResult {
	var stale []FileResult
	for _, f := range r.Files {
		if f.Stale() {
			stale = append(stale, f)
		}
	}
	return stale
}

// TotalBytes sums the size of every record.
func (r *WriteResult) TotalBytes() int {
	total := 0
	for _, f := range r.Files {
		total += f.Bytes
	}
	return total
}

// HumanBytes formats TotalBytes for display.
func (r *WriteResult) HumanBytes() string {
	return humanize.Bytes(uint64(r.TotalBytes())) //nolint:gosec // sizes are never negative
}

// Write writes records in order, skipping files whose content is already current.
// The first failure stops the run; files already written stay written.
func (w *Writer) Write(ctx context.Context, records []Record) (*WriteResult, error) {
	result := &WriteResult{Files: make([]FileResult, 0, len(records))}

	for _, rec := range records {
		status, err := Compare(ctx, rec)
		if err != nil {
			return result, err
		}

		fileResult := FileResult{
			Tool:   rec.Tool,
			Path:   rec.Filepath,
			Status: status,
			Bytes:  len(rec.Content),
		}

		if status != StatusUnchanged && !w.opts.DryRun {
			if status == StatusUpdated && w.opts.Backup {
				backedUp, err := fsutil.CreateBackup(ctx, rec.Filepath)
				if err != nil {
					return result, fmt.Errorf("write %s: %w", rec.Filepath, err)
				}
				fileResult.BackedUp = backedUp
			}

			if err := fsutil.WriteAtomic(ctx, rec.Filepath, []byte(rec.Content), fsutil.DefaultFileMode); err != nil {
				return result, fmt.Errorf("write %s: %w", rec.Filepath, err)
			}
		}

		result.Files = append(result.Files, fileResult)
	}

	return result, nil
}

// Compare reports how rec relates to the file currently on disk.
func Compare(ctx context.Context, rec Record) (Status, error) {
	existing, err := fsutil.ReadFileIfExists(ctx, rec.Filepath)
	if err != nil {
		return "", fmt.Errorf("compare %s: %w", rec.Filepath, err)
	}

	switch {
	case existing == nil:
		return StatusCreated, nil
	case string(existing) == rec.Content:
		return StatusUnchanged, nil
	default:
		return StatusUpdated, nil
	}
}
