package cli

import (
	"errors"

	"github.com/yaklabco/rulesync/internal/configloader"
	"github.com/yaklabco/rulesync/pkg/fsutil"
)

// Exit codes for rulesync.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the command ran but found a problem:
	// stale generated files or rule validation errors.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors that carry an exit code but need no further logging.
var (
	// ErrOutOfDate is returned by generate --check when files need regenerating.
	ErrOutOfDate = errors.New("generated files are out of date")

	// ErrValidationFailed is returned by check when any rule has errors.
	ErrValidationFailed = errors.New("rule validation failed")
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.Is(err, ErrOutOfDate), errors.Is(err, ErrValidationFailed):
		return ExitFailure
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsReported reports whether err was already explained to the user
// and only needs to set the exit code.
func IsReported(err error) bool {
	return errors.Is(err, ErrOutOfDate) || errors.Is(err, ErrValidationFailed)
}
