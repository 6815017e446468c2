package testutil

import (
	"io"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, logger.FormatText)
}
