package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SafeCloseWithLogging closes c and logs a failure instead of returning it.
// A resource that was already closed is not reported.
func SafeCloseWithLogging(c io.Closer, logger *slog.Logger, operation string) {
	if c == nil {
		return
	}

	err := c.Close()
	if err == nil || errors.Is(err, os.ErrClosed) {
		return
	}
	logCleanupFailure(logger, "failed to close resource", "resource_management", operation, err)
}

// HandleDeferredError runs deferredOp from a defer and folds its failure into
// *originalErr, wrapped with operation. An error already in *originalErr is
// kept; the cleanup failure is then only logged.
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}

	err := deferredOp()
	if err == nil {
		return
	}
	logCleanupFailure(logger, "deferred operation failed", "deferred_cleanup", operation, err)

	if originalErr != nil && *originalErr == nil {
		*originalErr = fmt.Errorf("%s failed: %w", operation, err)
	}
}

func logCleanupFailure(logger *slog.Logger, message, component, operation string, err error) {
	LogError(logger, message, err,
		slog.String("operation", operation),
		slog.String("component", component))
}
