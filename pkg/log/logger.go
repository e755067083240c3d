// Package log provides named leveled loggers sharing one configurable backend.
// Every Logger satisfies core.Logger and can be handed to the tracer.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/op/go-logging"
)

// Level is a logging verbosity, ordered from most to least verbose
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error

	numLevels = int(Error) + 1
)

var (
	levelNames    = [numLevels]string{"debug", "info", "notice", "warning", "error"}
	backendLevels = [numLevels]logging.Level{
		logging.DEBUG, logging.INFO, logging.NOTICE, logging.WARNING, logging.ERROR,
	}
)

func (l Level) String() string {
	if l < 0 || int(l) >= numLevels {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel maps a level name to a Level
func ParseLevel(name string) (Level, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == "warn" {
		norm = "warning"
	}
	for l, n := range levelNames {
		if n == norm {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

// backend returns the go-logging level for l, clamping out-of-range values
func (l Level) backend() logging.Level {
	switch {
	case l < Debug:
		return logging.DEBUG
	case int(l) >= numLevels:
		return logging.ERROR
	}
	return backendLevels[l]
}

// Line format: [time] [module] [level] message
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger adds notice and error output to the tracer's logging surface
type Logger interface {
	core.Logger

	Noticef(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a named module
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink sends all modules to sink. Levels are reset to Info.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the default verbosity of every module
func SetLevel(level Level) {
	leveledBackend.SetLevel(level.backend(), "")
}

// SetModuleLevel overrides the verbosity of one module
func SetModuleLevel(module string, level Level) {
	leveledBackend.SetLevel(level.backend(), module)
}

// Enabled reports whether module logs at level
func Enabled(module string, level Level) bool {
	return leveledBackend.IsEnabledFor(level.backend(), module)
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
