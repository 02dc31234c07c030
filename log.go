package figure

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Warnings (deprecations, non-interactive
// show) are on by default; scale resolution tracing is logged at debug
// level.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "figure",
})

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "figure",
		})
	}
	logger = l
}

// Logger returns the package logger, e.g. to change its level.
func Logger() *log.Logger { return logger }
