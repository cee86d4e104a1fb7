package chesscore

import (
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Logger is the facade used throughout this package; library code never
// reaches for a global logger, only a logr.Logger threaded in by the
// caller (or logr.Discard() if the caller doesn't care).
type Logger = logr.Logger

// NewStdLogger returns a Logger backed by the standard library's log
// package, for CLI drivers that want readable output without pulling in
// a structured sink.
func NewStdLogger(prefix string) Logger {
	return stdr.New(log.New(log.Writer(), prefix, log.LstdFlags))
}

// DiscardLogger returns a Logger that drops everything, for callers that
// don't want diagnostics (library defaults, benchmarks).
func DiscardLogger() Logger { return logr.Discard() }
