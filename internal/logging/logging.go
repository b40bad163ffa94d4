// Package logging holds the logger shared by the svgbuild packages.
package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	loggerPtr.Store(&nop)
}

// Set replaces the shared logger. It is safe for concurrent use.
// Pass nil to disable logging.
func Set(l *zerolog.Logger) {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger, silent by default.
func Logger() *zerolog.Logger { return loggerPtr.Load() }
