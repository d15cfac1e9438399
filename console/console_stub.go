//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Outside the browser the console writes through zap's global logger.
// The global is a no-op until a command installs one with zap.ReplaceGlobals,
// which keeps tests quiet.

// Log writes at info level.
func Log(args ...any) {
	zap.S().Info(join(args))
}

// Warn writes at warn level.
func Warn(args ...any) {
	zap.S().Warn(join(args))
}

// Error writes at error level.
func Error(args ...any) {
	zap.S().Error(join(args))
}

// join formats like the browser console: operands separated by spaces.
func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
