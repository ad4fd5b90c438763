//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger swallows everything the code under test logs.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
