// Package log provides named, leveled loggers writing to a single shared sink.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a go-logging level; lower values are more severe.
type Level logging.Level

const (
	Critical = Level(logging.CRITICAL)
	Error    = Level(logging.ERROR)
	Warning  = Level(logging.WARNING)
	Notice   = Level(logging.NOTICE)
	Info     = Level(logging.INFO)
	Debug    = Level(logging.DEBUG)
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

var level = logging.NOTICE

// Logger is the subset of *logging.Logger used by this module.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})

	// Fatal logs v at critical level and exits with status 1.
	Fatal(v ...interface{})
}

// New returns logger for module name.
func New(name string) Logger { return logging.MustGetLogger(name) }

// SetSink replaces the output of all loggers, keeping the current level.
func SetSink(w io.Writer) {
	b := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(b)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}

// SetLevel sets verbosity of all loggers; messages less severe than lvl are
// discarded.
func SetLevel(lvl Level) {
	level = logging.Level(lvl)
	backend.SetLevel(level, "")
}

func init() { SetSink(os.Stderr) }
