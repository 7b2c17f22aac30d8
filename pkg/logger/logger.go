package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init and writes at
// info level until then.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL and LOG_FORMAT. Call it once from main.
func Init() {
	Log = New(os.LookupEnv, os.Stderr)
}

// New builds a logger from the given environment lookup. LOG_LEVEL defaults
// to "info"; LOG_FORMAT "json" selects the JSON formatter, anything else the
// text formatter.
func New(lookup func(string) (string, bool), out io.Writer) *logrus.Logger {
	l := logrus.New()

	levelName, ok := lookup("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	format, _ := lookup("LOG_FORMAT")
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetOutput(out)
	return l
}
