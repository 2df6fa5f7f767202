package global

import (
	"fmt"
	"runtime"

	dumpx "github.com/gookit/goutil/dump"
	"go.uber.org/zap"
)

// Logger is the process-wide fallback logger, assigned once at startup.
// Packages that take an injected logger should prefer it.
var Logger *zap.Logger

// Log returns the fallback logger, a nop logger before startup finishes.
func Log() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}

// Dump pretty-prints values with their call site, for development.
func Dump(a ...any) {
	_, file, line, ok := runtime.Caller(1)
	if ok {
		fmt.Printf("\033[32m%s:%d:\033[0m\n", file, line)
	}
	dumpx.P(a...)
}
