// Common test helpers
package search

import (
	"log/slog"
	"os"

	"github.com/meghashyamc/sitesearch/logger"
)

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
